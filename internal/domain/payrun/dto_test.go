package payrun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionRequest_Validate(t *testing.T) {
	t.Parallel()

	for _, status := range StatusValues {
		req := TransitionRequest{Status: status}
		assert.NoError(t, req.Validate(), "status %q should be accepted", status)
	}

	for _, status := range []string{"", "archived", "DRAFT"} {
		req := TransitionRequest{Status: status}
		assert.Error(t, req.Validate(), "status %q should be rejected", status)
	}
}

func TestEditLineRequest_Validate_Status(t *testing.T) {
	t.Parallel()

	included := string(LineIncluded)
	req := EditLineRequest{Status: &included}
	assert.NoError(t, req.Validate())

	bogus := "paused"
	req = EditLineRequest{Status: &bogus}
	assert.Error(t, req.Validate())
}
