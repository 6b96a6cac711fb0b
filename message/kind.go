package message

type Kind string

// Inbound kinds
const (
	KindCoreFeedback      Kind = "/core/feedback"
	KindAutoFeedback      Kind = "/auto/feedback"
	KindArmSocketFeedback Kind = "/arm/feedback/socket"
	KindArmDigitFeedback  Kind = "/arm/feedback/digit"
	KindBioFeedback       Kind = "/bio/feedback"
	KindAntennaFeedback   Kind = "antenna/feedback"
)

// Outbound kinds
const (
	KindCoreControl    Kind = "/core/control"
	KindArmManual      Kind = "/arm/control/manual"
	KindArmIK          Kind = "/arm/control/ik"
	KindBioControl     Kind = "/bio/control"
	KindPtzControl     Kind = "/ptz/control"
	KindAntennaControl Kind = "antenna"
	KindAnchorRelay    Kind = "/anchor/relay"
)

var FeedbackKinds = []Kind{
	KindCoreFeedback,
	KindAutoFeedback,
	KindArmSocketFeedback,
	KindArmDigitFeedback,
	KindBioFeedback,
	KindAntennaFeedback,
}
