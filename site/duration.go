package site

import "time"

// Duration is a time.Duration that reads and writes as text, such as "1h30m".
type Duration time.Duration

// String formats the duration as time.Duration does.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	p, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(p)
	return nil
}
