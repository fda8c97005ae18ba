package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	err := New(CodeNotFound, "card not found")
	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeBadRequest))
	assert.False(t, Is(errors.New("plain"), CodeNotFound))
}

func TestIs_Wrapped(t *testing.T) {
	err := fmt.Errorf("handling request: %w", New(CodePolicyViolation, "disallowed"))
	assert.True(t, Is(err, CodePolicyViolation))
	assert.Equal(t, CodePolicyViolation, CodeOf(err))
}

func TestCodeOf_Unclassified(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(CodeInvalidInput))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(CodeNotFound))
	assert.Equal(t, http.StatusUnprocessableEntity, ToHTTPStatus(CodePolicyViolation))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus(Code("mystery")))
}
