package toolerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridscout/scanner/pkg/core"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "InvalidShapeParameter", KindInvalidShapeParameter.String())
	assert.Equal(t, "EmptyCandidateSet", KindEmptyCandidateSet.String())
	assert.Equal(t, "InsufficientResource", KindInsufficientResource.String())
	assert.Equal(t, "DisclosureExhausted", KindDisclosureExhausted.String())
	assert.Equal(t, "Unclassified", KindUnclassified.String())
}

func TestClassify_ServiceFailures(t *testing.T) {
	tests := []struct {
		name     string
		in       error
		want     Kind
		sentinel error
	}{
		{"energy", core.ErrNotEnoughEnergy, KindInsufficientResource, ErrInsufficientResource},
		{"wrapped energy", fmt.Errorf("disclose: %w", core.ErrNotEnoughEnergy), KindInsufficientResource, ErrInsufficientResource},
		{"discovery ceiling", core.ErrNoMoreDiscovery, KindDisclosureExhausted, ErrDisclosureExhausted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify(tt.in)
			assert.Equal(t, tt.want, KindOf(err))
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, tt.in)
		})
	}
}

func TestClassify_OtherFailureBecomesUnclassified(t *testing.T) {
	cause := errors.New("coordinate (9,9) out of bounds")
	err := Classify(cause)

	var u *Unclassified
	require.ErrorAs(t, err, &u)
	assert.Equal(t, "coordinate (9,9) out of bounds", u.Description)
	assert.Equal(t, "coordinate (9,9) out of bounds", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindUnclassified, KindOf(err))
}

func TestClassify_KeepsToolErrors(t *testing.T) {
	err := fmt.Errorf("%w: extent 2", ErrInvalidShapeParameter)
	assert.Same(t, err, Classify(err))

	u := Unclassifiedf("cell %s has no content", core.NewCoordinate(1, 2))
	assert.Same(t, u, Classify(u))
	assert.Equal(t, "cell (1,2) has no content", u.Error())
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, Classify(nil))
}
