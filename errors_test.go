package fatura_test

import (
	"errors"
	"testing"

	"github.com/mpontes/fatura"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := fatura.Errorf(fatura.ENOTFOUND, "record %q not found", "test")

	assert.Equal(t, fatura.ENOTFOUND, fatura.ErrorCode(err))
	assert.Equal(t, "record \"test\" not found", fatura.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, fatura.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fatura.EINTERNAL, fatura.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, fatura.ErrorMessage(nil))
}
