package randomstringgenerator

import (
	"math/rand"
	"sync"
	"time"

	"selector/internal/core/domain/registration"
)

// Alphabet holds ASCII letters of both cases and digits.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator draws from math/rand, it is not a source of secrets.
type Generator struct {
	chars []rune
	rnd   *rand.Rand
	lock  sync.Mutex
}

func NewGenerator() *Generator {
	return &Generator{
		chars: []rune(Alphabet),
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *Generator) GenerateRegisterToken() registration.Token {
	return registration.Token(g.generate(registration.TokenLength))
}

func (g *Generator) generate(length int) string {
	g.lock.Lock()
	defer g.lock.Unlock()
	b := make([]rune, length)
	for i := range b {
		b[i] = g.chars[g.rnd.Intn(len(g.chars))]
	}
	return string(b)
}
