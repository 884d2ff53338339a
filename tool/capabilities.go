package tool

// Capabilities is a snapshot of what a Tool can do, read off its required
// interface methods rather than inferred from an inheritance hierarchy
// (spec design note "Capability objects instead of inheritance").
type Capabilities struct {
	HasParameterSchema bool
	CanUpdateOutput    bool
	IsModifiable       bool
}

// GetCapabilities extracts t's capability set.
func GetCapabilities(t Tool) Capabilities {
	return Capabilities{
		HasParameterSchema: t.ParameterSchema().Type != "",
		CanUpdateOutput:    t.CanUpdateOutput(),
		IsModifiable:       t.IsModifiable(),
	}
}
