package lighting

// PointLightSet is a fixed array of point lights plus the number in use.
// Count may exceed the capacity; the excess is dropped when the set is read.
type PointLightSet struct {
	Lights [MaxPointLights]PointLight
	Count  int
}

// Active returns the first min(Count, MaxPointLights) lights.
func (s *PointLightSet) Active() []PointLight {
	return s.Lights[:activeCount(s.Count, MaxPointLights)]
}

// Add appends a light. Returns false if the set is full.
func (s *PointLightSet) Add(light PointLight) bool {
	n := activeCount(s.Count, MaxPointLights)
	if n >= MaxPointLights {
		return false
	}
	s.Lights[n] = light
	s.Count = n + 1
	return true
}

// SetLights replaces the set's contents, keeping at most MaxPointLights.
// Returns how many lights were dropped.
func (s *PointLightSet) SetLights(lights []PointLight) int {
	s.Lights = [MaxPointLights]PointLight{}
	s.Count = copy(s.Lights[:], lights)
	return len(lights) - s.Count
}

// SpotLightSet is a fixed array of spot lights plus the number in use.
type SpotLightSet struct {
	Lights [MaxSpotLights]SpotLight
	Count  int
}

// Active returns the first min(Count, MaxSpotLights) lights.
func (s *SpotLightSet) Active() []SpotLight {
	return s.Lights[:activeCount(s.Count, MaxSpotLights)]
}

// Add appends a light. Returns false if the set is full.
func (s *SpotLightSet) Add(light SpotLight) bool {
	n := activeCount(s.Count, MaxSpotLights)
	if n >= MaxSpotLights {
		return false
	}
	s.Lights[n] = light
	s.Count = n + 1
	return true
}

// SetLights replaces the set's contents, keeping at most MaxSpotLights.
// Returns how many lights were dropped.
func (s *SpotLightSet) SetLights(lights []SpotLight) int {
	s.Lights = [MaxSpotLights]SpotLight{}
	s.Count = copy(s.Lights[:], lights)
	return len(lights) - s.Count
}

// Rig is the complete set of lights for a frame.
type Rig struct {
	Directional DirectionalLight
	Points      PointLightSet
	Spots       SpotLightSet
}
