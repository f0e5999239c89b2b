// Package ppolicy decodes the LDAP password policy response control
// described in draft-behera-ldap-password-policy-10, along with the older
// VChu password policy controls.
package ppolicy

import (
	"fmt"
	"log"

	ber "github.com/go-asn1-ber/asn1-ber"
)

// Context tags of the PasswordPolicyResponseValue grammar:
//
//	PasswordPolicyResponseValue ::= SEQUENCE {
//	   warning [0] CHOICE {
//	      timeBeforeExpiration [0] INTEGER (0 .. maxInt),
//	      graceAuthNsRemaining [1] INTEGER (0 .. maxInt) } OPTIONAL,
//	   error   [1] ENUMERATED { 0..8 } OPTIONAL }
const (
	warningTag = 0
	errorTag   = 1

	timeBeforeExpirationTag = 0
	graceAuthNsRemainingTag = 1
)

// TraceLogger, when set, receives one line per decoded element. It has no
// effect on decoding outcomes and is nil in normal operation.
var TraceLogger *log.Logger

func trace(format string, args ...interface{}) {
	if TraceLogger != nil {
		TraceLogger.Printf(format, args...)
	}
}

// DecodeResponseValue parses the BER-encoded value of a password policy
// response control (OID 1.3.6.1.4.1.42.2.27.8.5.1) against the fixed
// grammar above. An empty SEQUENCE is valid and yields a value with no
// warning and no error.
//
// A repeated warning or error element is not rejected; the later element
// overwrites the earlier value.
func DecodeResponseValue(rawValue []byte) (*ResponseValue, error) {
	root, err := ber.DecodePacketErr(rawValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRoot, err)
	}
	if root.ClassType != ber.ClassUniversal || root.TagType != ber.TypeConstructed || root.Tag != ber.TagSequence {
		return nil, fmt.Errorf("%w (class %d, tag %d)", ErrMalformedRoot, root.ClassType, root.Tag)
	}
	trace("response value SEQUENCE with %d element(s)", len(root.Children))

	value := &ResponseValue{}
	for _, child := range root.Children {
		if child.ClassType != ber.ClassContext {
			return nil, fmt.Errorf("%w (class %d)", ErrUntaggedElement, child.ClassType)
		}
		switch child.Tag {
		case warningTag:
			if err := decodeWarning(child, value); err != nil {
				return nil, err
			}
		case errorTag:
			code, err := parseIntContent(child)
			if err != nil {
				return nil, fmt.Errorf("%w: error element: %v", ErrPrimitiveDecode, err)
			}
			trace("error %d (%s)", code, ErrorText(code))
			value.SetErrorCode(code)
		default:
			return nil, fmt.Errorf("%w (tag %d)", ErrInvalidElementTag, child.Tag)
		}
	}

	return value, nil
}

// decodeWarning resolves the CHOICE inside a warning element and stores the
// selected alternative on value.
func decodeWarning(packet *ber.Packet, value *ResponseValue) error {
	arm, err := warningChoice(packet)
	if err != nil {
		return err
	}
	if arm.ClassType != ber.ClassContext {
		return fmt.Errorf("%w (class %d)", ErrInvalidWarningTag, arm.ClassType)
	}

	switch arm.Tag {
	case timeBeforeExpirationTag, graceAuthNsRemainingTag:
	default:
		return fmt.Errorf("%w (tag %d)", ErrInvalidWarningTag, arm.Tag)
	}

	n, err := parseIntContent(arm)
	if err != nil {
		return fmt.Errorf("%w: warning element: %v", ErrPrimitiveDecode, err)
	}
	if n < 0 {
		return fmt.Errorf("%w: warning value %d outside (0..maxInt)", ErrPrimitiveDecode, n)
	}

	if arm.Tag == timeBeforeExpirationTag {
		trace("warning [%d] timeBeforeExpiration=%d", arm.Tag, n)
		value.SetTimeBeforeExpiration(n)
	} else {
		trace("warning [%d] graceAuthNsRemaining=%d", arm.Tag, n)
		value.SetGraceAuthNsRemaining(n)
	}

	return nil
}

// warningChoice returns the single nested element carried by a warning.
// The BER reader parses a constructed warning into children; a warning
// encoded as a primitive keeps its content as raw bytes that must be
// parsed separately.
func warningChoice(packet *ber.Packet) (*ber.Packet, error) {
	if len(packet.Children) > 0 {
		return packet.Children[0], nil
	}

	arm, err := ber.DecodePacketErr(packet.Data.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: warning content: %v", ErrPrimitiveDecode, err)
	}
	return arm, nil
}

// parseIntContent reads the content bytes of a context-tagged INTEGER or
// ENUMERATED. The BER reader leaves context primitives unvalued, so the
// integer is taken from the raw content.
func parseIntContent(packet *ber.Packet) (int64, error) {
	data := packet.Data.Bytes()
	if len(data) == 0 {
		return 0, fmt.Errorf("empty content")
	}
	return ber.ParseInt64(data)
}
