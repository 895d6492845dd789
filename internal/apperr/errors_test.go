package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/rankcorr/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	err := apperr.NewConfig("aggregate", "mode must be set")

	assert.Equal(t, "aggregate: mode must be set", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewConfig_NoField(t *testing.T) {
	err := apperr.NewConfig("", "no metric configured")

	assert.Equal(t, "no metric configured", err.Error())
}

func TestNewConfigWrap(t *testing.T) {
	inner := fmt.Errorf("yaml: line 3: did not find expected key")
	err := apperr.NewConfigWrap("judgments", "cannot load", inner)

	assert.Equal(t, "judgments: cannot load: yaml: line 3: did not find expected key", err.Error())
	assert.True(t, errors.Is(err, inner))
}

func TestConfigError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewConfig("relevant_counts", "negative count for \"q1\"")

	wrapped := fmt.Errorf("load session: %w", original)
	doubleWrapped := fmt.Errorf("start: %w", wrapped)

	var ce *apperr.ConfigError
	require.True(t, errors.As(doubleWrapped, &ce))
	assert.Equal(t, "relevant_counts", ce.Field)
	assert.True(t, apperr.IsConfig(doubleWrapped))
}

func TestIsConfig_PlainErrors(t *testing.T) {
	plain := fmt.Errorf("read failed")

	assert.False(t, apperr.IsConfig(plain))
	assert.False(t, apperr.IsConfig(nil))
	assert.False(t, apperr.IsConfig(apperr.NewValidation("bad grade")))
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid judgment file", inner)

	if err.Error() != "invalid judgment file: parse failed" {
		t.Errorf("expected 'invalid judgment file: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}
