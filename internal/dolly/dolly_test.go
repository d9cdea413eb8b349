package dolly

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration_TotalWorkedExample(t *testing.T) {
	cfg, err := FromSelection(Selection{
		Mode:     "relic",
		Material: "lapis",
		Finish:   "gloss",
		Addons:   []string{"engraving"},
	})
	require.NoError(t, err)

	// 2000 + 1200 + 800 + 100 + 50
	assert.Equal(t, 4150, cfg.Total())
}

func TestConfiguration_OmittedAxesPriceAsZero(t *testing.T) {
	var cfg Configuration
	assert.Equal(t, BasePricePence, cfg.Total())

	cfg, err := FromSelection(Selection{Material: "titanium"})
	require.NoError(t, err)
	assert.Equal(t, BasePricePence+500, cfg.Total())
}

func TestFromSelection_UnknownOption(t *testing.T) {
	_, err := FromSelection(Selection{Mode: "turbo"})
	require.Error(t, err)

	_, err = FromSelection(Selection{Addons: []string{"jetpack"}})
	require.Error(t, err)
}

func TestBuilder_SingleSelectReplaces(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Select(StageMode, "space"))
	require.NoError(t, b.Select(StageMode, "relic"))

	require.NotNil(t, b.Config.Mode)
	assert.Equal(t, "relic", b.Config.Mode.ID)
	assert.Equal(t, BasePricePence+1200, b.Total())
}

func TestBuilder_AddonsToggle(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.ToggleAddon("care"))
	assert.Equal(t, BasePricePence+200, b.Total())

	require.NoError(t, b.ToggleAddon("care"))
	assert.Equal(t, BasePricePence, b.Total())
	assert.Empty(t, b.Config.Addons)
}

func TestBuilder_SelectRejectsAddonStage(t *testing.T) {
	b := NewBuilder()
	require.Error(t, b.Select(StageAddons, "engraving"))
	require.Error(t, b.Select(StageReview, "anything"))
}

func TestBuilder_NavigationClampsAtEnds(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, StageMode, b.Stage())

	b.Prev()
	assert.Equal(t, StageMode, b.Stage())

	// forward navigation needs no selections
	for i := 0; i < 10; i++ {
		b.Next()
	}
	assert.Equal(t, StageReview, b.Stage())
}

func TestCartLine_EqualBuildsShareIdentity(t *testing.T) {
	cfg, err := FromSelection(Selection{
		Mode:   "play",
		Addons: []string{"care", "engraving"},
	})
	require.NoError(t, err)
	cfg2, err := FromSelection(Selection{
		Mode:   "play",
		Addons: []string{"engraving", "care"},
	})
	require.NoError(t, err)

	l1 := cfg.CartLine(1)
	l2 := cfg2.CartLine(1)
	assert.Equal(t, l1.Config, l2.Config)
	assert.Equal(t, l1.PricePence, l2.PricePence)
	assert.Equal(t, "dolly-custom", l1.ProductID)
	assert.Equal(t, cfg.Total(), l1.PricePence)
}

func TestShareStore_DistinctIDsPerSave(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryShareStore()

	raw := json.RawMessage(`{"mode":"relic"}`)
	id1, err := NewShareID()
	require.NoError(t, err)
	id2, err := NewShareID()
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	require.NoError(t, s.Save(ctx, SavedConfig{ShareID: id1, Config: raw, TotalPrice: 3200}))
	require.NoError(t, s.Save(ctx, SavedConfig{ShareID: id2, Config: raw, TotalPrice: 3200}))

	got, err := s.Get(ctx, id1)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(got.Config))
	assert.Equal(t, 3200, got.TotalPrice)
}

func TestShareStore_UnknownIDIsNotFound(t *testing.T) {
	s := NewMemoryShareStore()
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
