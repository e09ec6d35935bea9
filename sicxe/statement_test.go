package sicxe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatement(t *testing.T) {
	table := []struct {
		line     string
		label    string
		mnemonic string
		operand  string
	}{
		{"COPY START 1000", "COPY", "START", "1000"},
		{"LDA FIVE", "", "LDA", "FIVE"},
		{"  LDA   FIVE ", "", "LDA", "FIVE"},
		{"RSUB", "", "RSUB", ""},
		{"LOOP RSUB", "LOOP", "RSUB", ""},
		{"+JSUB RDREC", "", "+JSUB", "RDREC"},
		{"EOF BYTE C'EOF DATA'", "EOF", "BYTE", "C'EOF DATA'"},
		{"BYTE C'A B'", "", "BYTE", "C'A B'"},
		{"END FIRST", "", "END", "FIRST"},
		{"COMPR A,S", "", "COMPR", "A,S"},
	}

	for _, entry := range table {
		t.Run(entry.line, func(t *testing.T) {
			assert := assert.New(t)

			st, err := ParseStatement(entry.line)
			assert.NoError(err)
			assert.Equal(entry.label, st.Label)
			assert.Equal(entry.mnemonic, st.Mnemonic)
			assert.Equal(entry.operand, st.Operand)
			assert.False(st.Located)
		})
	}
}

func TestParseStatement_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseStatement("   ")
	assert.ErrorIs(err, ErrStatementEmpty)

	_, err = ParseStatement("A B C D")
	assert.ErrorIs(err, ErrMalformedOperand)
}

func TestParseStatements(t *testing.T) {
	assert := assert.New(t)

	stmts, errs := ParseStatements([]string{"START 0", "A B C D", "RSUB"})
	assert.Equal(2, len(stmts))
	assert.Equal(1, stmts[0].LineNo)
	assert.Equal(3, stmts[1].LineNo)

	assert.Equal(1, len(errs))
	var es *ErrStatement
	assert.True(errors.As(errs[0], &es))
	assert.Equal(2, es.LineNo)
	assert.Equal("A B C D", es.Line)
}

func TestStatement_String(t *testing.T) {
	assert := assert.New(t)

	st, err := ParseStatement("FIRST STL RETADR")
	assert.NoError(err)
	assert.Equal("FIRST STL RETADR", st.String())

	st.Address = 0x1000
	st.Located = true
	assert.Equal("1000 FIRST STL RETADR", st.String())
}
