package config

import "fmt"

// Overflow strategies of the observer relay.
const (
	// OverflowDropNew drops an envelope when the buffer is full. The
	// dispatcher never waits on observers.
	OverflowDropNew = "drop_new"
	// OverflowBlock makes Emit wait for buffer space. Closing the relay
	// releases waiting emitters and drops their envelopes.
	OverflowBlock = "block"
)

// DefaultRelayBufferSize is used when no positive buffer size is set.
const DefaultRelayBufferSize = 100

// RelayPolicy configures the channel between the dispatcher and its
// asynchronous observers.
type RelayPolicy struct {
	// BufferSize is the channel capacity; zero selects the default.
	BufferSize int `yaml:"buffer_size,omitempty" json:"buffer_size,omitempty" mapstructure:"buffer_size"`
	// OverflowStrategy is OverflowDropNew or OverflowBlock.
	OverflowStrategy string `yaml:"overflow_strategy,omitempty" json:"overflow_strategy,omitempty" mapstructure:"overflow_strategy"`
}

// DefaultRelayPolicy returns the drop_new policy with the default buffer.
func DefaultRelayPolicy() RelayPolicy {
	return RelayPolicy{BufferSize: DefaultRelayBufferSize, OverflowStrategy: OverflowDropNew}
}

// Normalize fills zero values with defaults.
func (p RelayPolicy) Normalize() RelayPolicy {
	if p.BufferSize <= 0 {
		p.BufferSize = DefaultRelayBufferSize
	}
	if p.OverflowStrategy == "" {
		p.OverflowStrategy = OverflowDropNew
	}
	return p
}

// Validate rejects unknown overflow strategies.
func (p RelayPolicy) Validate() error {
	switch p.OverflowStrategy {
	case "", OverflowDropNew, OverflowBlock:
		return nil
	default:
		return fmt.Errorf("invalid relay overflow_strategy '%s', expected '%s' or '%s'", p.OverflowStrategy, OverflowDropNew, OverflowBlock)
	}
}
