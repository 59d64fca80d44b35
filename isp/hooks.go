package isp

// Hooks binds the resolver and sequencer into the pre- and post-upload actions
type Hooks struct {
	resolver  *Resolver
	sequencer *Sequencer
}

// NewHooks returns upload hooks using r to find the port and s to drive it
func NewHooks(r *Resolver, s *Sequencer) *Hooks {
	return &Hooks{resolver: r, sequencer: s}
}

// PreUpload puts the target into bootloader mode before an upload
func (h *Hooks) PreUpload(env Environment) Result {
	port, ok := h.resolver.ResolveEnv(env)
	if !ok {
		return Result{Sequence: BootSequence.Name, Skipped: true}
	}
	return h.sequencer.EnterBootMode(port)
}

// PostUpload returns the target to normal run mode after an upload
func (h *Hooks) PostUpload(env Environment) Result {
	port, ok := h.resolver.ResolveEnv(env)
	if !ok {
		return Result{Sequence: NormalSequence.Name, Skipped: true}
	}
	return h.sequencer.RestoreNormalMode(port)
}
