package message

import "github.com/antongulenko/rover-bridge/vector"

type CoreFeedbackData struct {
	GpsLat  float64 `json:"gps_lat"`
	GpsLong float64 `json:"gps_long"`
	GpsSats float64 `json:"gps_sats"`
	GpsAlt  float64 `json:"gps_alt"`

	BnoGyro  vector.Vector3 `json:"bno_gyro"`
	BnoAccel vector.Vector3 `json:"bno_accel"`

	Orientation float64 `json:"orientation"`
	ImuCalib    float64 `json:"imu_calib"`

	BmpTemp float64 `json:"bmp_temp"`
	BmpAlt  float64 `json:"bmp_alt"`
	BmpPres float64 `json:"bmp_pres"`

	BatVoltage float64 `json:"bat_voltage"`
	Voltage12  float64 `json:"voltage_12"`
	Voltage5   float64 `json:"voltage_5"`
	Voltage3   float64 `json:"voltage_3"`

	// Drive motors: front left, back left, front right, back right
	FlTemp    float64 `json:"fl_temp"`
	FlVoltage float64 `json:"fl_voltage"`
	FlCurrent float64 `json:"fl_current"`
	BlTemp    float64 `json:"bl_temp"`
	BlVoltage float64 `json:"bl_voltage"`
	BlCurrent float64 `json:"bl_current"`
	FrTemp    float64 `json:"fr_temp"`
	FrVoltage float64 `json:"fr_voltage"`
	FrCurrent float64 `json:"fr_current"`
	BrTemp    float64 `json:"br_temp"`
	BrVoltage float64 `json:"br_voltage"`
	BrCurrent float64 `json:"br_current"`
}

type AutoFeedbackData struct {
	MissionType       int     `json:"mission_type"`
	TargetLat         float64 `json:"target_lat"`
	TargetLong        float64 `json:"target_long"`
	RemainingDistance float64 `json:"remaining_distance"`
	Update            string  `json:"update"`
	CurrentJob        string  `json:"current_job"`
	Warning           string  `json:"warning"`
}

type ArmSocketFeedbackData struct {
	Axis0Angle   float64 `json:"axis0_angle"`
	Axis0Temp    float64 `json:"axis0_temp"`
	Axis0Voltage float64 `json:"axis0_voltage"`
	Axis0Current float64 `json:"axis0_current"`
	Axis1Angle   float64 `json:"axis1_angle"`
	Axis1Temp    float64 `json:"axis1_temp"`
	Axis1Voltage float64 `json:"axis1_voltage"`
	Axis1Current float64 `json:"axis1_current"`
	Axis2Angle   float64 `json:"axis2_angle"`
	Axis2Temp    float64 `json:"axis2_temp"`
	Axis2Voltage float64 `json:"axis2_voltage"`
	Axis2Current float64 `json:"axis2_current"`
	Axis3Angle   float64 `json:"axis3_angle"`
	Axis3Temp    float64 `json:"axis3_temp"`
	Axis3Voltage float64 `json:"axis3_voltage"`
	Axis3Current float64 `json:"axis3_current"`

	BatVoltage float64 `json:"bat_voltage"`
	Voltage12  float64 `json:"voltage_12"`
	Voltage5   float64 `json:"voltage_5"`
	Voltage3   float64 `json:"voltage_3"`
}

type ArmDigitFeedbackData struct {
	WristAngle float64 `json:"wrist_angle"`
	BatVoltage float64 `json:"bat_voltage"`
	Voltage12  float64 `json:"voltage_12"`
	Voltage5   float64 `json:"voltage_5"`
}

type BioFeedbackData struct {
	BatVoltage    float64 `json:"bat_voltage"`
	Voltage12     float64 `json:"voltage_12"`
	Voltage5      float64 `json:"voltage_5"`
	DrillTemp     float64 `json:"drill_temp"`
	DrillHumidity float64 `json:"drill_humidity"`
}

type AntennaFeedbackData struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Sat     float64 `json:"sat"`
	Heading float64 `json:"heading"`
	Calib   float64 `json:"calib"`
}

type CoreControlData struct {
	LeftStick     float64 `json:"left_stick"`
	RightStick    float64 `json:"right_stick"`
	MaxSpeed      int     `json:"max_speed"`
	Brake         bool    `json:"brake"`
	TurnToEnable  bool    `json:"turn_to_enable"`
	TurnTo        float64 `json:"turn_to"`
	TurnToTimeout float64 `json:"turn_to_timeout"`
}

type ArmManualData struct {
	Axis0          int  `json:"axis0"`
	Axis1          int  `json:"axis1"`
	Axis2          int  `json:"axis2"`
	Axis3          int  `json:"axis3"`
	Brake          bool `json:"brake"`
	EffectorRoll   int  `json:"effector_roll"`
	EffectorYaw    int  `json:"effector_yaw"`
	Gripper        int  `json:"gripper"`
	LinearActuator int  `json:"linear_actuator"`
	Laser          int  `json:"laser"`
}

type ArmIKData struct {
	MovementVector vector.Vector3 `json:"movement_vector"`
	Gripper        int            `json:"gripper"`
	LinearActuator int            `json:"linear_actuator"`
	Laser          int            `json:"laser"`
	EffectorRoll   int            `json:"effector_roll"`
	EffectorYaw    int            `json:"effector_yaw"`
}

type BioControlData struct {
	PumpID         int     `json:"pump_id"`
	PumpAmount     float64 `json:"pump_amount"`
	FanID          int     `json:"fan_id"`
	FanDuration    float64 `json:"fan_duration"`
	ServoID        int     `json:"servo_id"`
	ServoState     bool    `json:"servo_state"`
	BioArm         int     `json:"bio_arm"`
	Laser          int     `json:"laser"`
	Drill          int     `json:"drill"`
	DrillArm       int     `json:"drill_arm"`
	VibrationMotor int     `json:"vibration_motor"`
}

type PtzControlData struct {
	ControlMode int     `json:"control_mode"`
	TurnYaw     float64 `json:"turn_yaw"`
	TurnPitch   float64 `json:"turn_pitch"`
	Yaw         float64 `json:"yaw"`
	Pitch       float64 `json:"pitch"`
	AxisID      int     `json:"axis_id"`
	Angle       float64 `json:"angle"`
	ZoomLevel   float64 `json:"zoom_level"`
	StreamType  int     `json:"stream_type"`
	StreamFreq  int     `json:"stream_freq"`
	Reset       bool    `json:"reset"`
}

type AntennaControlData struct {
	Message string `json:"message"`
}

type AnchorRelayData struct {
	Data string `json:"data"`
}
