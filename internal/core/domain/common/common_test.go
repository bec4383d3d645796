package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	type test struct {
		raw      string
		expected Email
	}
	cases := []test{
		{raw: "John.Doe@Example.COM", expected: Email("John.Doe@example.com")},
		{raw: "  jane@example.com ", expected: Email("jane@example.com")},
		{raw: "", expected: Email("")},
		{raw: "no-at-sign", expected: Email("no-at-sign")},
	}

	for _, testcase := range cases {
		t.Run(testcase.raw, func(t *testing.T) {
			require.Equal(t, testcase.expected, NewEmail(testcase.raw))
		})
	}
}

func TestOptional(t *testing.T) {
	assert := require.New(t)

	absent := NewOptional("", false)
	assert.Equal("[-]", absent.String())
	assert.Equal("fallback", absent.ValueOr("fallback"))

	present := Some("value")
	assert.True(present.IsPresent)
	assert.Equal("[value]", present.String())
	assert.Equal("value", present.ValueOr("fallback"))
}
