package ppolicy

import (
	"fmt"

	ber "github.com/go-asn1-ber/asn1-ber"
)

const (
	// ControlTypePasswordPolicy - https://tools.ietf.org/html/draft-behera-ldap-password-policy-10
	ControlTypePasswordPolicy = "1.3.6.1.4.1.42.2.27.8.5.1"
	// ControlTypeVChuPasswordMustChange - https://tools.ietf.org/html/draft-vchu-ldap-pwd-policy-00
	ControlTypeVChuPasswordMustChange = "2.16.840.1.113730.3.4.4"
	// ControlTypeVChuPasswordWarning - https://tools.ietf.org/html/draft-vchu-ldap-pwd-policy-00
	ControlTypeVChuPasswordWarning = "2.16.840.1.113730.3.4.5"
)

// ControlTypeMap maps password policy related control OIDs to text
// descriptions.
var ControlTypeMap = map[string]string{
	ControlTypePasswordPolicy:         "Password Policy - Behera Draft",
	ControlTypeVChuPasswordMustChange: "Password Must Change - VChu Draft",
	ControlTypeVChuPasswordWarning:    "Password Warning - VChu Draft",
}

// Control is the (type, criticality, value) triple carried by an LDAP
// response control. Criticality and Value are optional on the wire and
// default to false and nil.
type Control struct {
	OID         string
	Criticality bool
	Value       []byte
}

// ResponseValue decodes the control value as a password policy response.
// It does not check the control OID; callers normally filter with
// FindControl first.
func (c *Control) ResponseValue() (*ResponseValue, error) {
	return DecodeResponseValue(c.Value)
}

// ParseControl extracts the control triple from a BER Control element:
// a SEQUENCE of the control type, an optional criticality BOOLEAN and an
// optional OCTET STRING value.
func ParseControl(packet *ber.Packet) (*Control, error) {
	if len(packet.Children) == 0 {
		return nil, fmt.Errorf("ppolicy: control has no children")
	}

	oid, ok := packet.Children[0].Value.(string)
	if !ok {
		return nil, fmt.Errorf("ppolicy: control type is not an OCTET STRING")
	}
	ctrl := &Control{OID: oid}

	switch len(packet.Children) {
	case 1:
		// just the type
	case 2:
		// Children[1] is either criticality or value; duck-type on
		// whether it decoded as a boolean
		if criticality, ok := packet.Children[1].Value.(bool); ok {
			ctrl.Criticality = criticality
		} else {
			ctrl.Value = packet.Children[1].Data.Bytes()
		}
	case 3:
		criticality, ok := packet.Children[1].Value.(bool)
		if !ok {
			return nil, fmt.Errorf("ppolicy: control criticality is not a BOOLEAN")
		}
		ctrl.Criticality = criticality
		ctrl.Value = packet.Children[2].Data.Bytes()
	default:
		return nil, fmt.Errorf("ppolicy: control has more than 3 children")
	}

	return ctrl, nil
}

// FindControl scans the children of an LDAP Controls element for a control
// with the given OID. It returns nil if no well-formed control matches.
func FindControl(controls *ber.Packet, oid string) *Control {
	if controls == nil {
		return nil
	}
	for _, child := range controls.Children {
		ctrl, err := ParseControl(child)
		if err != nil {
			continue
		}
		if ctrl.OID == oid {
			return ctrl
		}
	}
	return nil
}
