package main

import (
	"context"
	"time"

	"github.com/antongulenko/rover-bridge/feedback"
	"github.com/antongulenko/rover-bridge/gamepad"
	"github.com/antongulenko/rover-bridge/message"
	log "github.com/sirupsen/logrus"
)

func (r *roverBridge) statusLoop(ctx context.Context) {
	ticker := time.NewTicker(r.statusInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		fields := statusFields(r.bridge.Demux, r.bridge.Cell.Load())
		if r.link != nil {
			if session, ok := r.link.Session(); ok {
				fields["session"] = session
			} else {
				fields["session"] = "disconnected"
			}
		}
		log.WithFields(fields).Println("Status")
	}
}

func statusFields(demux *feedback.Demux, state gamepad.State) log.Fields {
	fields := log.Fields{
		"gamepad": state.Connected,
	}
	if last, ok := demux.LastUpdate(); ok {
		fields["feedback_age"] = time.Since(time.UnixMilli(last)).Round(time.Millisecond)
	}
	if core, ok := demux.CoreFeedback(); ok {
		fields["core_battery"] = core.Data.BatVoltage
		fields["gps"] = [2]float64{core.Data.GpsLat, core.Data.GpsLong}
		fields["gps_sats"] = core.Data.GpsSats
	}
	if arm, ok := demux.ArmSocketFeedback(); ok {
		fields["arm_battery"] = arm.Data.BatVoltage
	}
	if bio, ok := demux.BioFeedback(); ok {
		fields["bio_battery"] = bio.Data.BatVoltage
	}
	if antenna, ok := demux.AntennaFeedback(); ok {
		fields["antenna_heading"] = antenna.Data.Heading
	}
	return fields
}

// warningLoop logs autonomy warnings as soon as they arrive
func warningLoop(ctx context.Context, demux *feedback.Demux) {
	updates := demux.Subscribe(message.KindAutoFeedback)
	defer demux.Unsubscribe(message.KindAutoFeedback, updates)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-updates:
			if !ok {
				return
			}
			if auto, ok := msg.(message.AutoFeedback); ok && auto.Data.Warning != "" {
				log.WithField("job", auto.Data.CurrentJob).Warnf("Autonomy warning: %v", auto.Data.Warning)
			}
		}
	}
}
