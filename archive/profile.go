package archive

import (
	"time"

	"github.com/arloliu/calfit/calibration"
)

// ProfileOptions returns the encoder options stored in a calibration profile.
func ProfileOptions(p calibration.Profile) []EncoderOption {
	return []EncoderOption{WithCompression(p.Archive.Compression)}
}

// EncodeProfile archives a calibration report under the profile's sensor name
// with the profile's archive settings. Extra opts are applied after the
// profile's own and override them.
func EncodeProfile(p calibration.Profile, rep *calibration.Report, createdAt time.Time, opts ...EncoderOption) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return Encode(NewRecord(p.Sensor, rep, createdAt), append(ProfileOptions(p), opts...)...)
}
