package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateItemID(t *testing.T) {
	tests := []struct {
		name    string
		itemID  string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid id - lowercase",
			itemID:  "li_6f3a2b",
			wantErr: false,
		},
		{
			name:    "valid id - uuid style",
			itemID:  "b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5",
			wantErr: false,
		},
		{
			name:    "valid id - single char",
			itemID:  "a",
			wantErr: false,
		},
		{
			name:    "valid id - max length",
			itemID:  strings.Repeat("a", 64),
			wantErr: false,
		},
		{
			name:    "invalid - empty",
			itemID:  "",
			wantErr: true,
			errMsg:  "item id cannot be empty",
		},
		{
			name:    "invalid - too long",
			itemID:  strings.Repeat("a", 65),
			wantErr: true,
			errMsg:  "must not exceed",
		},
		{
			name:    "invalid - contains space",
			itemID:  "li 6f3a2b",
			wantErr: true,
			errMsg:  "can only contain",
		},
		{
			name:    "invalid - contains slash",
			itemID:  "li/6f3a2b",
			wantErr: true,
			errMsg:  "can only contain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItemID(tt.itemID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateElapsedSeconds(t *testing.T) {
	assert.NoError(t, ValidateElapsedSeconds(0))
	assert.NoError(t, ValidateElapsedSeconds(845.5))

	assert.Error(t, ValidateElapsedSeconds(-1))
	assert.Error(t, ValidateElapsedSeconds(math.NaN()))
	assert.Error(t, ValidateElapsedSeconds(math.Inf(1)))
}

func TestValidateDuration(t *testing.T) {
	assert.NoError(t, ValidateDuration(0)) // неизвестная длительность
	assert.NoError(t, ValidateDuration(3600))

	assert.Error(t, ValidateDuration(-5))
	assert.Error(t, ValidateDuration(math.Inf(-1)))
}
