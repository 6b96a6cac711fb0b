package message

import "encoding/json"

type CoreFeedback struct {
	Timestamp int64
	Data      CoreFeedbackData
}

func (CoreFeedback) Kind() Kind             { return KindCoreFeedback }
func (m CoreFeedback) Time() int64          { return m.Timestamp }
func (m CoreFeedback) payload() interface{} { return m.Data }

type AutoFeedback struct {
	Timestamp int64
	Data      AutoFeedbackData
}

func (AutoFeedback) Kind() Kind             { return KindAutoFeedback }
func (m AutoFeedback) Time() int64          { return m.Timestamp }
func (m AutoFeedback) payload() interface{} { return m.Data }

type ArmSocketFeedback struct {
	Timestamp int64
	Data      ArmSocketFeedbackData
}

func (ArmSocketFeedback) Kind() Kind             { return KindArmSocketFeedback }
func (m ArmSocketFeedback) Time() int64          { return m.Timestamp }
func (m ArmSocketFeedback) payload() interface{} { return m.Data }

type ArmDigitFeedback struct {
	Timestamp int64
	Data      ArmDigitFeedbackData
}

func (ArmDigitFeedback) Kind() Kind             { return KindArmDigitFeedback }
func (m ArmDigitFeedback) Time() int64          { return m.Timestamp }
func (m ArmDigitFeedback) payload() interface{} { return m.Data }

type BioFeedback struct {
	Timestamp int64
	Data      BioFeedbackData
}

func (BioFeedback) Kind() Kind             { return KindBioFeedback }
func (m BioFeedback) Time() int64          { return m.Timestamp }
func (m BioFeedback) payload() interface{} { return m.Data }

type AntennaFeedback struct {
	Timestamp int64
	Data      AntennaFeedbackData
}

func (AntennaFeedback) Kind() Kind             { return KindAntennaFeedback }
func (m AntennaFeedback) Time() int64          { return m.Timestamp }
func (m AntennaFeedback) payload() interface{} { return m.Data }

type CoreControl struct {
	Timestamp int64
	Data      CoreControlData
}

func (CoreControl) Kind() Kind             { return KindCoreControl }
func (m CoreControl) Time() int64          { return m.Timestamp }
func (m CoreControl) payload() interface{} { return m.Data }

type ArmManual struct {
	Timestamp int64
	Data      ArmManualData
}

func (ArmManual) Kind() Kind             { return KindArmManual }
func (m ArmManual) Time() int64          { return m.Timestamp }
func (m ArmManual) payload() interface{} { return m.Data }

type ArmIK struct {
	Timestamp int64
	Data      ArmIKData
}

func (ArmIK) Kind() Kind             { return KindArmIK }
func (m ArmIK) Time() int64          { return m.Timestamp }
func (m ArmIK) payload() interface{} { return m.Data }

type BioControl struct {
	Timestamp int64
	Data      BioControlData
}

func (BioControl) Kind() Kind             { return KindBioControl }
func (m BioControl) Time() int64          { return m.Timestamp }
func (m BioControl) payload() interface{} { return m.Data }

type PtzControl struct {
	Timestamp int64
	Data      PtzControlData
}

func (PtzControl) Kind() Kind             { return KindPtzControl }
func (m PtzControl) Time() int64          { return m.Timestamp }
func (m PtzControl) payload() interface{} { return m.Data }

type AntennaControl struct {
	Timestamp int64
	Data      AntennaControlData
}

func (AntennaControl) Kind() Kind             { return KindAntennaControl }
func (m AntennaControl) Time() int64          { return m.Timestamp }
func (m AntennaControl) payload() interface{} { return m.Data }

type AnchorRelay struct {
	Timestamp int64
	Data      AnchorRelayData
}

func (AnchorRelay) Kind() Kind             { return KindAnchorRelay }
func (m AnchorRelay) Time() int64          { return m.Timestamp }
func (m AnchorRelay) payload() interface{} { return m.Data }

// Unrecognized carries a message with a type outside the known set
type Unrecognized struct {
	Type      Kind
	Timestamp int64
	Data      json.RawMessage
}

func (m Unrecognized) Kind() Kind           { return m.Type }
func (m Unrecognized) Time() int64          { return m.Timestamp }
func (m Unrecognized) payload() interface{} { return m.Data }
