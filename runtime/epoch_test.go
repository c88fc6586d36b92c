package runtime

import (
	"context"
	"selection-lab/domain/selection"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEpoch_Advance_CancelsPreviousHint(t *testing.T) {
	req := require.New(t)
	epoch := NewEpoch(context.Background())

	// Given a request stamped in the first generation
	generation, hint := epoch.Stamp()
	req.Equal(selection.Generation(0), generation)
	req.NoError(hint.Err())

	// When the epoch advances
	next := epoch.Advance()

	// Then the previous hint is canceled and a fresh one is handed out
	req.Equal(selection.Generation(1), next)
	req.Equal(next, epoch.Current())
	req.ErrorIs(hint.Err(), context.Canceled)

	generation, hint = epoch.Stamp()
	req.Equal(next, generation)
	req.NoError(hint.Err())
}

func TestEpoch_Close(t *testing.T) {
	req := require.New(t)
	epoch := NewEpoch(context.Background())
	_, hint := epoch.Stamp()

	epoch.Close()

	req.ErrorIs(hint.Err(), context.Canceled)
	req.Equal(selection.Generation(0), epoch.Current())
}

func TestEpoch_ParentCanceled(t *testing.T) {
	req := require.New(t)
	parent, cancel := context.WithCancel(context.Background())
	epoch := NewEpoch(parent)

	cancel()
	epoch.Advance()

	_, hint := epoch.Stamp()
	req.Error(hint.Err())
}
