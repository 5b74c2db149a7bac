package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type PhysicsBodyComponentSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Radius        float64 `yaml:"radius"`
	Mass          float64 `yaml:"mass"`
	Friction      float64 `yaml:"friction"`
	Elasticity    float64 `yaml:"elasticity"`
	Static        bool    `yaml:"static"`
	FixedRotation bool    `yaml:"fixed_rotation"`
}

// CharacterControllerComponentSpec holds the movement tuning. A nil
// MaxSlopeAngle disables the slope limit.
type CharacterControllerComponentSpec struct {
	Acceleration  float64            `yaml:"acceleration"`
	JumpImpulse   float64            `yaml:"jump_impulse"`
	MaxSlopeAngle *float64           `yaml:"max_slope_angle"`
	Probe         ProbeComponentSpec `yaml:"probe"`
}

type ProbeComponentSpec struct {
	Scale       float64 `yaml:"scale"`
	MaxDistance float64 `yaml:"max_distance"`
	Samples     int     `yaml:"samples"`
}

type ControllerStateComponentSpec struct {
	Facing float64 `yaml:"facing"`
}
