package main

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/Macmod/ppolicyx/log"
	"github.com/Macmod/ppolicyx/ppolicy"
	"github.com/fatih/color"
	ber "github.com/go-asn1-ber/asn1-ber"
	"github.com/spf13/pflag"
)

var green = color.New(color.FgGreen)
var red = color.New(color.FgRed)
var yellow = color.New(color.FgYellow)
var blue = color.New(color.FgBlue)

var (
	useBase64   bool
	fromControl bool
	interactive bool
	traceNodes  bool
	logFileName string
)

func init() {
	pflag.BoolVarP(&useBase64, "base64", "b", false, "Read the input as base64 instead of hex")
	pflag.BoolVarP(&fromControl, "control", "c", false, "Input is a whole BER Control element, not just the control value")
	pflag.BoolVarP(&interactive, "interactive", "i", false, "Start an interactive decode shell")
	pflag.BoolVarP(&traceNodes, "trace", "t", false, "Trace each decoded element")
	pflag.StringVarP(&logFileName, "output", "o", "", "Log file to tee output into")
}

func parseInput(input string) ([]byte, error) {
	input = strings.Join(strings.Fields(input), "")
	if useBase64 {
		return base64.StdEncoding.DecodeString(input)
	}
	input = strings.TrimPrefix(input, "0x")
	return hex.DecodeString(input)
}

// controlValue unwraps a BER Control element down to its control value,
// reporting the OID and criticality on the way.
func controlValue(data []byte) ([]byte, error) {
	packet, err := ber.DecodePacketErr(data)
	if err != nil {
		return nil, fmt.Errorf("unparseable control element: %v", err)
	}

	ctrl, err := ppolicy.ParseControl(packet)
	if err != nil {
		return nil, err
	}

	desc, known := ppolicy.ControlTypeMap[ctrl.OID]
	if !known {
		desc = "Unknown"
	}
	blue.Printf("Control Type: %s (%s)\n", ctrl.OID, desc)
	blue.Printf("Criticality: %v\n", ctrl.Criticality)

	switch ctrl.OID {
	case ppolicy.ControlTypeVChuPasswordMustChange:
		mustChange, err := ppolicy.DecodeVChuMustChange(ctrl)
		if err != nil {
			return nil, err
		}
		yellow.Printf("Password must change: %v\n", mustChange.MustChange)
		return nil, nil
	case ppolicy.ControlTypeVChuPasswordWarning:
		warning, err := ppolicy.DecodeVChuWarning(ctrl)
		if err != nil {
			return nil, err
		}
		yellow.Printf("Password expires in %d second(s)\n", warning.Expire)
		return nil, nil
	}

	return ctrl.Value, nil
}

func report(data []byte) error {
	if fromControl {
		value, err := controlValue(data)
		if err != nil || value == nil {
			return err
		}
		data = value
	}

	value, err := ppolicy.DecodeResponseValue(data)
	if err != nil {
		return err
	}

	if seconds, ok := value.TimeBeforeExpiration(); ok {
		yellow.Printf("Password expires in %d second(s)\n", seconds)
	}
	if remaining, ok := value.GraceAuthNsRemaining(); ok {
		yellow.Printf("%d grace authentication(s) remaining\n", remaining)
	}
	if code, ok := value.ErrorCode(); ok {
		red.Printf("Policy error %d: %s\n", code, value.ErrorText())
	}
	if !value.HasTimeWarning() && !value.HasGraceWarning() && !value.HasError() {
		green.Printf("No password policy warnings or errors\n")
	}

	return nil
}

func main() {
	pflag.Parse()

	log.InitLog(logFileName)
	if traceNodes {
		ppolicy.TraceLogger = log.Log
	}

	if interactive {
		RunShell()
		return
	}

	input := strings.Join(pflag.Args(), "")
	if input == "" {
		scanner := bufio.NewScanner(os.Stdin)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		input = strings.Join(lines, "")
	}

	data, err := parseInput(input)
	if err != nil {
		log.Log.Fatalf("[-] Invalid input: %v", err)
	}

	if err := report(data); err != nil {
		log.Log.Printf("[-] Decode failed: %v", err)
		os.Exit(1)
	}
}
