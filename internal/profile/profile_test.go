package profile_test

import (
	"testing"

	"github.com/peakform/peakformcom/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain will run goleak after all tests have been run in the package
// to detect any goroutine leaks
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestUpdateRequest_ToSnapshot(t *testing.T) {
	req := profile.UpdateRequest{
		DisplayName:  "Jamie",
		Goal:         "lose weight",
		Weight:       "82.5",
		TargetWeight: "78",
		Height:       " 180 ",
	}

	snapshot, err := req.ToSnapshot("client-1")
	require.NoError(t, err)
	assert.Equal(t, "client-1", snapshot.ClientID)
	assert.Equal(t, "Jamie", snapshot.DisplayName)
	require.NotNil(t, snapshot.Weight)
	assert.Equal(t, 82.5, *snapshot.Weight)
	require.NotNil(t, snapshot.TargetWeight)
	assert.Equal(t, 78.0, *snapshot.TargetWeight)
	require.NotNil(t, snapshot.Height)
	assert.Equal(t, 180.0, *snapshot.Height)
}

func TestUpdateRequest_ToSnapshot_EmptyFieldsClear(t *testing.T) {
	req := profile.UpdateRequest{
		DisplayName: "Jamie",
		Weight:      "",
		Height:      "  ",
	}

	snapshot, err := req.ToSnapshot("client-1")
	require.NoError(t, err)
	assert.Nil(t, snapshot.Weight)
	assert.Nil(t, snapshot.TargetWeight)
	assert.Nil(t, snapshot.Height)
}

func TestUpdateRequest_ToSnapshot_BadNumber(t *testing.T) {
	req := profile.UpdateRequest{
		Weight: "eighty",
	}

	snapshot, err := req.ToSnapshot("client-1")
	require.Error(t, err)
	assert.Nil(t, snapshot)
}
