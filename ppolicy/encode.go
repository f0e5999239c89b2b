package ppolicy

import (
	ber "github.com/go-asn1-ber/asn1-ber"
)

// Encode builds the BER packet for the response value, suitable as the
// control value of a password policy response control. An empty value
// encodes to an empty SEQUENCE.
func (v *ResponseValue) Encode() *ber.Packet {
	seq := ber.Encode(ber.ClassUniversal, ber.TypeConstructed, ber.TagSequence, nil, "PasswordPolicyResponseValue")

	if v.hasTimeWarning || v.hasGraceWarning {
		warning := ber.Encode(ber.ClassContext, ber.TypeConstructed, warningTag, nil, "Warning")
		if v.hasTimeWarning {
			warning.AppendChild(ber.NewInteger(ber.ClassContext, ber.TypePrimitive, timeBeforeExpirationTag, v.timeBeforeExpiration, "TimeBeforeExpiration"))
		} else {
			warning.AppendChild(ber.NewInteger(ber.ClassContext, ber.TypePrimitive, graceAuthNsRemainingTag, v.graceAuthNsRemaining, "GraceAuthNsRemaining"))
		}
		seq.AppendChild(warning)
	}

	if v.hasError {
		seq.AppendChild(ber.NewInteger(ber.ClassContext, ber.TypePrimitive, errorTag, v.errorCode, "Error"))
	}

	return seq
}

// Bytes returns the BER encoding of the response value.
func (v *ResponseValue) Bytes() []byte {
	return v.Encode().Bytes()
}

// NewRequestControl builds the password policy request control a client
// attaches to a bind or modify operation to solicit a policy response.
// The request control carries no value, only the OID and criticality.
func NewRequestControl(criticality bool) *ber.Packet {
	packet := ber.Encode(ber.ClassUniversal, ber.TypeConstructed, ber.TagSequence, nil, "Control")
	packet.AppendChild(ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, ControlTypePasswordPolicy, "Control Type (Password Policy - Behera Draft)"))
	if criticality {
		packet.AppendChild(ber.NewBoolean(ber.ClassUniversal, ber.TypePrimitive, ber.TagBoolean, true, "Criticality"))
	}
	return packet
}
