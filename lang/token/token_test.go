package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok <= maxToken; tok++ {
		if tok.String() == "" {
			t.Errorf("missing string representation of token %d", tok)
		}
	}
}

func TestTokenLiteral(t *testing.T) {
	assert.Equal(t, `"a\nb"`, TEXT.Literal(Value{Raw: "{a\nb}", String: "a\nb"}))
	assert.Equal(t, "1-Jan-2000", DATE.Literal(Value{Raw: "1-Jan-2000"}))
	assert.Equal(t, " note", COMMENT.Literal(Value{Raw: "; note", String: " note"}))
	assert.Equal(t, "", LBRACK.Literal(Value{Raw: "["}))
	assert.Equal(t, "'['", LBRACK.GoString())
	assert.True(t, ISSUE.IsWord())
	assert.False(t, INTEGER.IsWord())
	assert.True(t, TAG.IsLiteral())
	assert.False(t, SLASH.IsLiteral())
}
