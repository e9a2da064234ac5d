package model

import (
	"github.com/dana-network/danad/domain/dana/ruleerrors"
	"github.com/pkg/errors"
)

// ParsableVersion is the only section version the parsers accept. Encoders
// accept any version that fits in a byte.
const ParsableVersion = 0

// VersionByte validates a version given to an encoder and returns its wire
// form.
func VersionByte(version int) (uint8, error) {
	if version < 0 || version > 0xff {
		return 0, errors.Wrapf(ruleerrors.ErrUnsupportedVersion,
			"version %d is not in the range 0..255", version)
	}
	return uint8(version), nil
}

// CheckParsableVersion fails with ruleerrors.ErrUnsupportedVersion unless
// version is ParsableVersion.
func CheckParsableVersion(version uint8) error {
	if version != ParsableVersion {
		return errors.Wrapf(ruleerrors.ErrUnsupportedVersion,
			"version %d is not supported, only version %d can be parsed", version, ParsableVersion)
	}
	return nil
}
