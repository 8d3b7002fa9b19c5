package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"invalid input", InvalidInput("bad"), KindInvalidInput},
		{"not found", NotFound("food %d not found", 1), KindNotFound},
		{"conflict", Conflict("duplicate"), KindConflict},
		{"internal", Internal(errors.New("boom")), KindInternal},
		{"wrapped", fmt.Errorf("context: %w", NotFound("gone")), KindNotFound},
		{"foreign error defaults to internal", errors.New("boom"), KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessageOfHidesInternalCause(t *testing.T) {
	err := Internal(errors.New("dial tcp: connection refused"))
	assert.NotContains(t, MessageOf(err), "connection refused")

	assert.Equal(t, "bad", MessageOf(InvalidInput("bad")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root")
	err := Wrap(KindConflict, "exists", cause)
	assert.ErrorIs(t, err, cause)
}

func TestFromStore(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"record not found", gorm.ErrRecordNotFound, KindNotFound},
		{
			"unique constraint",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			KindConflict,
		},
		{
			"primary key constraint",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
			KindConflict,
		},
		{
			"check constraint",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck},
			KindInvalidInput,
		},
		{
			"foreign key constraint",
			sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey},
			KindInvalidInput,
		},
		{"unknown error", errors.New("disk I/O error"), KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromStore(tt.err).Kind)
		})
	}
}

func TestFromStoreKeepsStructuredErrors(t *testing.T) {
	orig := NotFound("recipe 7 not found")
	got := FromStore(fmt.Errorf("tx: %w", orig))
	assert.Equal(t, KindNotFound, got.Kind)
	assert.Equal(t, "recipe 7 not found", got.Message)
}

func TestFromStoreNil(t *testing.T) {
	assert.Nil(t, FromStore(nil))
}
