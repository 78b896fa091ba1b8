package layout

// State is the mutable layout selection. The Is*Active flags mirror
// SelectionIndex and are recomputed by every method that moves it.
type State struct {
	SelectionIndex uint

	IsTreeActive      bool
	IsAccordionActive bool
	IsLandscapeActive bool
}

// NewState returns a state with Tree active
func NewState() *State {
	s := &State{}
	s.Synchronize()
	return s
}

// Current returns the active layout
func (s *State) Current() Name {
	return Choices[s.SelectionIndex%Count]
}

// Synchronize recomputes the flags from SelectionIndex
func (s *State) Synchronize() {
	current := s.Current()
	s.IsTreeActive = current == Tree
	s.IsAccordionActive = current == Accordion
	s.IsLandscapeActive = current == Landscape
}

// IsActive reports the flag stored for n
func (s *State) IsActive(n Name) bool {
	switch n {
	case Tree:
		return s.IsTreeActive
	case Accordion:
		return s.IsAccordionActive
	case Landscape:
		return s.IsLandscapeActive
	default:
		return false
	}
}

// Cycle advances to the next layout and returns it
func (s *State) Cycle() Name {
	s.SelectionIndex++
	s.Synchronize()
	return s.Current()
}

// Select jumps directly to n
func (s *State) Select(n Name) error {
	if !n.Valid() {
		return &InvalidLayoutError{Choice: n.String()}
	}
	s.SelectionIndex = uint(n)
	s.Synchronize()
	return nil
}
