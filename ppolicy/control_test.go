package ppolicy

import (
	"testing"

	ber "github.com/go-asn1-ber/asn1-ber"
	"github.com/stretchr/testify/assert"
)

func controlPacket(oid string, criticality bool, value []byte) *ber.Packet {
	packet := ber.Encode(ber.ClassUniversal, ber.TypeConstructed, ber.TagSequence, nil, "Control")
	packet.AppendChild(ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, oid, "Control Type"))
	if criticality {
		packet.AppendChild(ber.NewBoolean(ber.ClassUniversal, ber.TypePrimitive, ber.TagBoolean, true, "Criticality"))
	}
	if value != nil {
		packet.AppendChild(ber.NewString(ber.ClassUniversal, ber.TypePrimitive, ber.TagOctetString, string(value), "Control Value"))
	}
	return packet
}

func reparse(t *testing.T, packet *ber.Packet) *ber.Packet {
	t.Helper()
	parsed, err := ber.DecodePacketErr(packet.Bytes())
	assert.NoError(t, err)
	return parsed
}

func TestParseControl_Full(t *testing.T) {
	inner := valueBytes(errorElem(ErrorAccountLocked))
	packet := reparse(t, controlPacket(ControlTypePasswordPolicy, true, inner))

	ctrl, err := ParseControl(packet)
	assert.NoError(t, err)
	assert.Equal(t, ControlTypePasswordPolicy, ctrl.OID)
	assert.True(t, ctrl.Criticality)
	assert.Equal(t, inner, ctrl.Value)
}

func TestParseControl_ValueWithoutCriticality(t *testing.T) {
	inner := valueBytes(timeWarningElem(30))
	packet := reparse(t, controlPacket(ControlTypePasswordPolicy, false, inner))

	ctrl, err := ParseControl(packet)
	assert.NoError(t, err)
	assert.False(t, ctrl.Criticality)
	assert.Equal(t, inner, ctrl.Value)
}

func TestParseControl_TypeOnly(t *testing.T) {
	packet := reparse(t, controlPacket(ControlTypeVChuPasswordMustChange, false, nil))

	ctrl, err := ParseControl(packet)
	assert.NoError(t, err)
	assert.Equal(t, ControlTypeVChuPasswordMustChange, ctrl.OID)
	assert.False(t, ctrl.Criticality)
	assert.Nil(t, ctrl.Value)
}

func TestParseControl_Empty(t *testing.T) {
	packet := ber.Encode(ber.ClassUniversal, ber.TypeConstructed, ber.TagSequence, nil, "Control")
	_, err := ParseControl(packet)
	assert.Error(t, err)
}

func TestControl_ResponseValue(t *testing.T) {
	inner := valueBytes(graceWarningElem(5))
	packet := reparse(t, controlPacket(ControlTypePasswordPolicy, false, inner))

	ctrl, err := ParseControl(packet)
	assert.NoError(t, err)

	value, err := ctrl.ResponseValue()
	assert.NoError(t, err)

	remaining, ok := value.GraceAuthNsRemaining()
	assert.True(t, ok)
	assert.Equal(t, int64(5), remaining)
}

func TestFindControl(t *testing.T) {
	controls := ber.Encode(ber.ClassContext, ber.TypeConstructed, 0, nil, "Controls")
	controls.AppendChild(controlPacket("1.2.840.113556.1.4.319", false, []byte{0x30, 0x00}))
	controls.AppendChild(controlPacket(ControlTypePasswordPolicy, false, valueBytes(errorElem(ErrorPasswordExpired))))

	parsed := reparse(t, controls)

	ctrl := FindControl(parsed, ControlTypePasswordPolicy)
	assert.NotNil(t, ctrl)
	assert.Equal(t, ControlTypePasswordPolicy, ctrl.OID)

	value, err := ctrl.ResponseValue()
	assert.NoError(t, err)
	code, ok := value.ErrorCode()
	assert.True(t, ok)
	assert.Equal(t, int64(ErrorPasswordExpired), code)
}

func TestFindControl_Missing(t *testing.T) {
	controls := ber.Encode(ber.ClassContext, ber.TypeConstructed, 0, nil, "Controls")
	controls.AppendChild(controlPacket("1.2.840.113556.1.4.319", false, nil))

	parsed := reparse(t, controls)
	assert.Nil(t, FindControl(parsed, ControlTypePasswordPolicy))
	assert.Nil(t, FindControl(nil, ControlTypePasswordPolicy))
}

func TestDecodeVChuWarning(t *testing.T) {
	ctrl := &Control{OID: ControlTypeVChuPasswordWarning, Value: []byte("1800")}

	warning, err := DecodeVChuWarning(ctrl)
	assert.NoError(t, err)
	assert.Equal(t, int64(1800), warning.Expire)
}

func TestDecodeVChuWarning_BadValue(t *testing.T) {
	ctrl := &Control{OID: ControlTypeVChuPasswordWarning, Value: []byte("soon")}
	_, err := DecodeVChuWarning(ctrl)
	assert.Error(t, err)
}

func TestDecodeVChuWarning_WrongOID(t *testing.T) {
	ctrl := &Control{OID: ControlTypePasswordPolicy, Value: []byte("1800")}
	_, err := DecodeVChuWarning(ctrl)
	assert.Error(t, err)
}

func TestDecodeVChuMustChange(t *testing.T) {
	ctrl := &Control{OID: ControlTypeVChuPasswordMustChange}

	mustChange, err := DecodeVChuMustChange(ctrl)
	assert.NoError(t, err)
	assert.True(t, mustChange.MustChange)
}
