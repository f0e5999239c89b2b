package ppolicy

import (
	"fmt"
	"strconv"
	"strings"
)

// The VChu draft (draft-vchu-ldap-pwd-policy-00) predates the Behera
// response value and spreads the same state over two separate controls.

// VChuPasswordMustChange reports that the password must be changed before
// other operations are allowed. The control carries no value; its presence
// is the signal.
type VChuPasswordMustChange struct {
	MustChange bool
}

// VChuPasswordWarning carries the number of seconds until the password
// expires, encoded as a decimal string.
type VChuPasswordWarning struct {
	Expire int64
}

// DecodeVChuMustChange interprets a control as the VChu must-change
// control.
func DecodeVChuMustChange(ctrl *Control) (*VChuPasswordMustChange, error) {
	if ctrl.OID != ControlTypeVChuPasswordMustChange {
		return nil, fmt.Errorf("ppolicy: unexpected control OID %q", ctrl.OID)
	}
	return &VChuPasswordMustChange{MustChange: true}, nil
}

// DecodeVChuWarning interprets a control as the VChu expiry warning
// control.
func DecodeVChuWarning(ctrl *Control) (*VChuPasswordWarning, error) {
	if ctrl.OID != ControlTypeVChuPasswordWarning {
		return nil, fmt.Errorf("ppolicy: unexpected control OID %q", ctrl.OID)
	}

	expireStr := strings.TrimSpace(string(ctrl.Value))
	expire, err := strconv.ParseInt(expireStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ppolicy: cannot parse VChu warning value %q: %v", expireStr, err)
	}

	return &VChuPasswordWarning{Expire: expire}, nil
}
