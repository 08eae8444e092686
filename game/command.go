package game

import (
	"encoding/json"
	"fmt"
)

// Command type names used on the wire
const (
	CommandTypeControl = "control"
	CommandTypeFire    = "fire"
	CommandTypeSpawn   = "spawn"
	CommandTypeUpgrade = "upgrade"
)

// Command is an instruction from a player to the server.
type Command interface {
	Type() string
}

// Guidance is the desired heading and speed of a boat.
type Guidance struct {
	DirectionTarget Angle   `json:"directionTarget"`
	VelocityTarget  float32 `json:"velocityTarget"`
}

// Control steers a boat. Nil targets leave the current value unchanged.
type Control struct {
	Guidance       *Guidance `json:"guidance,omitempty"`
	AltitudeTarget *Altitude `json:"altitudeTarget,omitempty"`
	AimTarget      *Vec2     `json:"aimTarget,omitempty"`
	Active         bool      `json:"active"`
}

// Fire launches armament Index toward PositionTarget.
type Fire struct {
	Index          uint8 `json:"index"`
	PositionTarget Vec2  `json:"positionTarget"`
}

// Spawn requests a new boat of the given type.
type Spawn struct {
	EntityType EntityType `json:"entityType"`
}

// Upgrade requests changing the current boat to the given type.
type Upgrade struct {
	EntityType EntityType `json:"entityType"`
}

func (Control) Type() string { return CommandTypeControl }
func (Fire) Type() string    { return CommandTypeFire }
func (Spawn) Type() string   { return CommandTypeSpawn }
func (Upgrade) Type() string { return CommandTypeUpgrade }

// CommandMessage is the JSON envelope of a command.
type CommandMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalCommand wraps c in a CommandMessage envelope.
func MarshalCommand(c Command) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", c.Type(), err)
	}
	return json.Marshal(CommandMessage{Type: c.Type(), Data: data})
}

// UnmarshalCommand decodes an envelope produced by MarshalCommand.
func UnmarshalCommand(b []byte) (Command, error) {
	var msg CommandMessage
	if err := json.Unmarshal(b, &msg); err != nil {
		return nil, fmt.Errorf("decode command envelope: %w", err)
	}

	var c Command
	var err error
	switch msg.Type {
	case CommandTypeControl:
		var v Control
		err = json.Unmarshal(msg.Data, &v)
		c = v
	case CommandTypeFire:
		var v Fire
		err = json.Unmarshal(msg.Data, &v)
		c = v
	case CommandTypeSpawn:
		var v Spawn
		err = json.Unmarshal(msg.Data, &v)
		c = v
	case CommandTypeUpgrade:
		var v Upgrade
		err = json.Unmarshal(msg.Data, &v)
		c = v
	default:
		return nil, fmt.Errorf("unknown command type %q", msg.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", msg.Type, err)
	}
	return c, nil
}
