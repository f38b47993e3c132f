package physics

import "fmt"

const (
	DefaultDt                     = 1.0 / 60.0
	DefaultGravity                = 800.0
	DefaultAirFriction            = 0.98
	DefaultBounceFactor           = 0.65
	DefaultGroundFriction         = 0.92
	DefaultMinimumVelocity        = 10.0
	DefaultRestitution            = 0.6
	DefaultVelocitySleepThreshold = 20.0
	DefaultPositionSleepThreshold = 1.0
)

// Params holds every tunable of the step. Units are pixels and seconds.
type Params struct {
	Dt                     float64 `yaml:"dt"`
	Gravity                float64 `yaml:"gravity"`
	AirFriction            float64 `yaml:"air_friction"`
	BounceFactor           float64 `yaml:"bounce_factor"`
	GroundFriction         float64 `yaml:"ground_friction"`
	MinimumVelocity        float64 `yaml:"minimum_velocity"`
	Restitution            float64 `yaml:"restitution"`
	VelocitySleepThreshold float64 `yaml:"velocity_sleep_threshold"`
	PositionSleepThreshold float64 `yaml:"position_sleep_threshold"`
}

func DefaultParams() Params {
	return Params{
		Dt:                     DefaultDt,
		Gravity:                DefaultGravity,
		AirFriction:            DefaultAirFriction,
		BounceFactor:           DefaultBounceFactor,
		GroundFriction:         DefaultGroundFriction,
		MinimumVelocity:        DefaultMinimumVelocity,
		Restitution:            DefaultRestitution,
		VelocitySleepThreshold: DefaultVelocitySleepThreshold,
		PositionSleepThreshold: DefaultPositionSleepThreshold,
	}
}

// Set assigns the parameter with the given yaml name.
func (p *Params) Set(name string, v float64) error {
	switch name {
	case "dt":
		p.Dt = v
	case "gravity":
		p.Gravity = v
	case "air_friction":
		p.AirFriction = v
	case "bounce_factor":
		p.BounceFactor = v
	case "ground_friction":
		p.GroundFriction = v
	case "minimum_velocity":
		p.MinimumVelocity = v
	case "restitution":
		p.Restitution = v
	case "velocity_sleep_threshold":
		p.VelocitySleepThreshold = v
	case "position_sleep_threshold":
		p.PositionSleepThreshold = v
	default:
		return fmt.Errorf("physics: unknown parameter %q", name)
	}
	return nil
}
