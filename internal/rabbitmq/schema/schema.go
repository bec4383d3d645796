package schema

import (
	"encoding/json"
	"fmt"
)

// RegisterTokensDispatch asks for the unsent register tokens of an account to be
// delivered.
type RegisterTokensDispatch struct {
	AccountID int64 `json:"account_id"`
}

func (m *RegisterTokensDispatch) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *RegisterTokensDispatch) Unmarshal(data []byte) error {
	if err := json.Unmarshal(data, m); err != nil {
		return err
	}
	if m.AccountID <= 0 {
		return fmt.Errorf("invalid account id %d", m.AccountID)
	}
	return nil
}
