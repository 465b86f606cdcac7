// Copyright 2021 weiplanet. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package terminal

// TelemetryCode names one counted operation.
type TelemetryCode int

const (
	TelCUU TelemetryCode = iota
	TelCUD
	TelCUF
	TelCUB
	TelCNL
	TelCPL
	TelCHA
	TelCUP
	TelHPA
	TelVPA
	TelHPR
	TelVPR
	TelICH
	TelDCH
	TelED
	TelEL
	TelECH
	TelSU
	TelSD
	TelIL
	TelDL
	TelCHT
	TelCBT
	TelHTS
	TelTBC
	TelDECSET
	TelDECRST
	TelSGR
	TelDSR
	TelDA
	TelDA2
	TelDA3
	TelDECSTBM
	TelDECSCUSR
	TelDECSTR
	TelANSISYSSC
	TelANSISYSRC
	TelDTTERMWM
	TelREP
	TelDECSC
	TelDECRC
	TelDECKPAM
	TelDECKPNM
	TelNEL
	TelIND
	TelRI
	TelRIS
	TelSS2
	TelSS3
	TelLS2
	TelLS3
	TelLS1R
	TelLS2R
	TelLS3R
	TelDECALN
	TelDOCS
	TelDesignateG0
	TelDesignateG1
	TelDesignateG2
	TelDesignateG3
	TelOSCWindowTitle
	TelOSCColorTable
	TelOSCForeground
	TelOSCBackground
	TelOSCCursorColor
	TelOSCClipboard
	TelOSCResetCursorColor
	TelOSCHyperlink

	telemetryCodeCount
)

// Telemetry counts recognized operations. It is side-effect-only and
// never fails; the engine logs through whichever handle it was given.
// Counting is not synchronized: the parser call chain is single
// threaded by contract.
type Telemetry struct {
	counts [telemetryCodeCount]uint64
}

// DefaultTelemetry is the process-wide instance engines use unless a
// handle is injected.
var DefaultTelemetry = &Telemetry{}

func (t *Telemetry) Log(code TelemetryCode) {
	if t == nil {
		return
	}
	t.counts[code]++
}

func (t *Telemetry) Count(code TelemetryCode) uint64 {
	if t == nil {
		return 0
	}
	return t.counts[code]
}

// Total sums every counter; cmd hosts print it on exit.
func (t *Telemetry) Total() uint64 {
	if t == nil {
		return 0
	}
	var total uint64
	for _, c := range t.counts {
		total += c
	}
	return total
}

func (t *Telemetry) Reset() {
	if t == nil {
		return
	}
	t.counts = [telemetryCodeCount]uint64{}
}
