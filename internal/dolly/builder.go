package dolly

import "fmt"

// Stage is one step of the build wizard. Navigation is free in both
// directions; no stage requires a selection to proceed.
type Stage int

const (
	StageMode Stage = iota
	StageMaterial
	StageFinish
	StageAddons
	StageReview
)

func (s Stage) String() string {
	switch s {
	case StageMode:
		return "mode"
	case StageMaterial:
		return "material"
	case StageFinish:
		return "finish"
	case StageAddons:
		return "addons"
	case StageReview:
		return "review"
	}
	return "unknown"
}

// Builder tracks wizard state for one build session. The first three
// stages hold at most one selection each (selecting again replaces);
// addons toggle independently.
type Builder struct {
	stage  Stage
	Config Configuration
}

func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) Stage() Stage { return b.stage }

func (b *Builder) Next() {
	if b.stage < StageReview {
		b.stage++
	}
}

func (b *Builder) Prev() {
	if b.stage > StageMode {
		b.stage--
	}
}

// Select sets the single option for one of the first three stages.
func (b *Builder) Select(stage Stage, id string) error {
	var (
		opts []Option
		dst  **Option
	)
	switch stage {
	case StageMode:
		opts, dst = Modes, &b.Config.Mode
	case StageMaterial:
		opts, dst = Materials, &b.Config.Material
	case StageFinish:
		opts, dst = Finishes, &b.Config.Finish
	default:
		return fmt.Errorf("stage %s does not take a single selection", stage)
	}
	o, ok := findOption(opts, id)
	if !ok {
		return fmt.Errorf("unknown %s option: %s", stage, id)
	}
	*dst = &o
	return nil
}

// ToggleAddon selects the addon if absent, deselects it if present.
func (b *Builder) ToggleAddon(id string) error {
	o, ok := findOption(Addons, id)
	if !ok {
		return fmt.Errorf("unknown addon option: %s", id)
	}
	for i, a := range b.Config.Addons {
		if a.ID == id {
			b.Config.Addons = append(b.Config.Addons[:i], b.Config.Addons[i+1:]...)
			return nil
		}
	}
	b.Config.Addons = append(b.Config.Addons, o)
	return nil
}

func (b *Builder) Total() int { return b.Config.Total() }
