package pasetotoken

import (
	paseto "aidanwoods.dev/go-paseto"
)

type Mode string

const (
	// ModeLocal uses v4.local tokens encrypted with a symmetric key.
	ModeLocal Mode = "local"
	// ModePublic uses v4.public tokens signed with an Ed25519 key pair.
	ModePublic Mode = "public"
)

// KeyStrings carries hex-encoded key material as read from config.
type KeyStrings struct {
	Mode Mode

	SymmetricHex string
	SecretHex    string
	PublicHex    string
}

// Keys holds the parsed key material for the configured mode.
type Keys struct {
	Mode Mode

	Symmetric *paseto.V4SymmetricKey
	Secret    *paseto.V4AsymmetricSecretKey
	Public    *paseto.V4AsymmetricPublicKey
}

// LoadKeys parses hex key material for the given mode. Local mode needs the
// symmetric key; public mode needs the public key and, for issuing, the
// secret key as well.
func LoadKeys(ks KeyStrings) (Keys, error) {
	out := Keys{Mode: ks.Mode}

	switch ks.Mode {
	case ModeLocal:
		if ks.SymmetricHex == "" {
			return Keys{}, ErrConfig{Msg: "local mode requires symmetric key"}
		}
		k, err := paseto.V4SymmetricKeyFromHex(ks.SymmetricHex)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid symmetric key: " + err.Error()}
		}
		out.Symmetric = &k

	case ModePublic:
		if ks.PublicHex == "" {
			return Keys{}, ErrConfig{Msg: "public mode requires public key"}
		}
		pk, err := paseto.NewV4AsymmetricPublicKeyFromHex(ks.PublicHex)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid public key: " + err.Error()}
		}
		out.Public = &pk

		if ks.SecretHex != "" {
			sk, err := paseto.NewV4AsymmetricSecretKeyFromHex(ks.SecretHex)
			if err != nil {
				return Keys{}, ErrConfig{Msg: "invalid secret key: " + err.Error()}
			}
			out.Secret = &sk
		}

	default:
		return Keys{}, ErrConfig{Msg: "unknown mode: " + string(ks.Mode)}
	}

	return out, nil
}
