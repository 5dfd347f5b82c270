package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptk/omnilogic-local/internal/mspconfig"
	"github.com/cryptk/omnilogic-local/internal/telemetry"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Read live equipment state from a controller",
	Long: `Read live equipment state from a controller.

Each subcommand fetches the controller's configuration and live telemetry,
then prints a merged view of every piece of equipment of that kind.`,
}

func init() {
	getCmd.AddCommand(
		newGetCmd("backyard", "Show overall controller status", runGetBackyard),
		newGetCmd("bows", "List bodies of water (pools/spas)", runGetBoWs),
		newGetCmd("lights", "List ColorLogic/Pentair/Zodiac lights", runGetLights),
		newGetCmd("relays", "List relays", runGetRelays),
		newGetCmd("pumps", "List standalone pumps", runGetPumps),
		newGetCmd("filters", "List filter pumps", runGetFilters),
		newGetCmd("heaters", "List heaters", runGetHeaters),
		newGetCmd("schedules", "List saved schedules", runGetSchedules),
		newGetCmd("groups", "List equipment groups", runGetGroups),
		newGetCmd("chlorinators", "List chlorinators", runGetChlorinators),
		newGetCmd("csads", "List chemistry (acid/CO2) controllers", runGetCSADs),
		newGetCmd("sensors", "List standalone sensors", runGetSensors),
		newGetCmd("valves", "List valve actuators", runGetValves),
	)
}

func newGetCmd(use, short string, run func(cfg *mspconfig.Config, snap *telemetry.Snapshot) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			cfg, err := client.GetConfig(ctx)
			if err != nil {
				return fmt.Errorf("failed to get configuration: %w", err)
			}
			snap, err := client.GetTelemetry(ctx)
			if err != nil {
				return fmt.Errorf("failed to get telemetry: %w", err)
			}

			return run(cfg, snap)
		},
	}
}

// printRows renders rows either as a JSON array (--format json) or as one
// line per row (detailed/compact both collapse to the same plain text,
// matching the teacher's "compact" format for list-shaped output).
func printRows(rows any, lines func() []string) error {
	if outputFormat == "json" {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}
	for _, line := range lines() {
		fmt.Println(line)
	}
	return nil
}

func runGetBackyard(cfg *mspconfig.Config, snap *telemetry.Snapshot) error {
	type row struct {
		Units          string `json:"units"`
		SpeedFormat    string `json:"vsp_speed_format"`
		AirTemp        int    `json:"air_temp"`
		State          int    `json:"state"`
		MSPVersion     string `json:"msp_version"`
		ConfigChecksum int    `json:"config_checksum"`
	}
	r := row{
		Units:          cfg.System.Units,
		SpeedFormat:    cfg.System.VSPSpeedFormat,
		AirTemp:        snap.Backyard.AirTemp,
		State:          snap.Backyard.State,
		MSPVersion:     snap.Backyard.MSPVersion,
		ConfigChecksum: snap.Backyard.ConfigChecksum,
	}
	return printRows(r, func() []string {
		return []string{
			fmt.Sprintf("Units:         %s (speeds in %s)", r.Units, r.SpeedFormat),
			fmt.Sprintf("Air Temp:      %d", r.AirTemp),
			fmt.Sprintf("State:         %d", r.State),
			fmt.Sprintf("MSP Version:   %s", r.MSPVersion),
			fmt.Sprintf("Config Chksum: %d", r.ConfigChecksum),
		}
	})
}

func runGetBoWs(cfg *mspconfig.Config, snap *telemetry.Snapshot) error {
	type row struct {
		SystemID  int    `json:"system_id"`
		Name      string `json:"name"`
		Type      string `json:"type"`
		WaterTemp int    `json:"water_temp"`
		Flow      int    `json:"flow"`
	}
	var rows []row
	for _, bow := range cfg.Backyard.BodiesOfWater {
		r := row{SystemID: bow.SystemID, Name: bow.Name, Type: string(bow.Type)}
		for _, t := range snap.BoW {
			if t.SystemID == bow.SystemID {
				r.WaterTemp = t.WaterTemp
				r.Flow = t.Flow
			}
		}
		rows = append(rows, r)
	}
	return printRows(rows, func() []string {
		var lines []string
		for _, r := range rows {
			lines = append(lines, fmt.Sprintf("[%d] %-20s type=%-10s water_temp=%-4d flow=%d",
				r.SystemID, r.Name, r.Type, r.WaterTemp, r.Flow))
		}
		return lines
	})
}

func runGetFilters(cfg *mspconfig.Config, snap *telemetry.Snapshot) error {
	type row struct {
		SystemID int    `json:"system_id"`
		BowID    int    `json:"bow_system_id"`
		Name     string `json:"name"`
		Type     string `json:"type"`
		State    int    `json:"state"`
		Speed    int    `json:"speed"`
	}
	var rows []row
	for _, bow := range cfg.Backyard.BodiesOfWater {
		for _, f := range bow.Filter {
			r := row{SystemID: f.SystemID, BowID: bow.SystemID, Name: f.Name, Type: string(f.Type)}
			for _, t := range snap.Filter {
				if t.SystemID == f.SystemID {
					r.State = t.State
					r.Speed = t.Speed
				}
			}
			rows = append(rows, r)
		}
	}
	return printRows(rows, func() []string {
		var lines []string
		for _, r := range rows {
			lines = append(lines, fmt.Sprintf("[%d] %-20s bow=%-4d type=%-10s state=%d speed=%d%%",
				r.SystemID, r.Name, r.BowID, r.Type, r.State, r.Speed))
		}
		return lines
	})
}

func runGetPumps(cfg *mspconfig.Config, snap *telemetry.Snapshot) error {
	type row struct {
		SystemID int    `json:"system_id"`
		BowID    int    `json:"bow_system_id"`
		Name     string `json:"name"`
		Function string `json:"function"`
		State    int    `json:"state"`
		Speed    int    `json:"speed"`
	}
	var rows []row
	for _, bow := range cfg.Backyard.BodiesOfWater {
		for _, p := range bow.Pump {
			r := row{SystemID: p.SystemID, BowID: bow.SystemID, Name: p.Name, Function: string(p.Function)}
			for _, t := range snap.Pump {
				if t.SystemID == p.SystemID {
					r.State = t.State
					r.Speed = t.Speed
				}
			}
			rows = append(rows, r)
		}
	}
	return printRows(rows, func() []string {
		var lines []string
		for _, r := range rows {
			lines = append(lines, fmt.Sprintf("[%d] %-20s bow=%-4d function=%-12s state=%d speed=%d%%",
				r.SystemID, r.Name, r.BowID, r.Function, r.State, r.Speed))
		}
		return lines
	})
}

func runGetHeaters(cfg *mspconfig.Config, snap *telemetry.Snapshot) error {
	type row struct {
		SystemID int    `json:"system_id"`
		BowID    int    `json:"bow_system_id"`
		SetPoint int    `json:"set_point"`
		Mode     int    `json:"mode"`
		Kind     string `json:"kind"`
	}
	var rows []row
	for _, bow := range cfg.Backyard.BodiesOfWater {
		if bow.Heater == nil {
			continue
		}
		r := row{SystemID: bow.Heater.SystemID, BowID: bow.SystemID, SetPoint: bow.Heater.SetPoint, Kind: "virtual"}
		for _, t := range snap.VirtualHeater {
			if t.SystemID == bow.Heater.SystemID {
				r.SetPoint = t.CurrentSetPoint
				r.Mode = t.Mode
			}
		}
		rows = append(rows, r)
		for _, he := range bow.Heater.HeaterEquipment {
			hr := row{SystemID: he.SystemID, BowID: bow.SystemID, Kind: string(he.HeaterType)}
			for _, t := range snap.Heater {
				if t.SystemID == he.SystemID {
					hr.SetPoint = t.Temp
				}
			}
			rows = append(rows, hr)
		}
	}
	return printRows(rows, func() []string {
		var lines []string
		for _, r := range rows {
			lines = append(lines, fmt.Sprintf("[%d] bow=%-4d kind=%-12s set_point=%-4d mode=%d",
				r.SystemID, r.BowID, r.Kind, r.SetPoint, r.Mode))
		}
		return lines
	})
}

func runGetChlorinators(cfg *mspconfig.Config, snap *telemetry.Snapshot) error {
	type row struct {
		SystemID     int    `json:"system_id"`
		BowID        int    `json:"bow_system_id"`
		TimedPercent int    `json:"timed_percent"`
		SaltLevel    int    `json:"instant_salt_level"`
		Active       bool   `json:"active"`
		Errors       string `json:"errors"`
	}
	var rows []row
	for _, bow := range cfg.Backyard.BodiesOfWater {
		if bow.Chlorinator == nil {
			continue
		}
		r := row{SystemID: bow.Chlorinator.SystemID, BowID: bow.SystemID, TimedPercent: bow.Chlorinator.TimedPercent}
		for _, t := range snap.Chlorinator {
			if t.SystemID == bow.Chlorinator.SystemID {
				r.SaltLevel = t.InstantSaltLevel
				r.Active = t.Active()
				r.Errors = fmt.Sprintf("%#04x", uint16(t.Errors()))
			}
		}
		rows = append(rows, r)
	}
	return printRows(rows, func() []string {
		var lines []string
		for _, r := range rows {
			lines = append(lines, fmt.Sprintf("[%d] bow=%-4d timed_percent=%-4d salt=%-5d active=%-5t errors=%s",
				r.SystemID, r.BowID, r.TimedPercent, r.SaltLevel, r.Active, r.Errors))
		}
		return lines
	})
}

func runGetLights(cfg *mspconfig.Config, snap *telemetry.Snapshot) error {
	type row struct {
		SystemID   int    `json:"system_id"`
		BowID      int    `json:"bow_system_id"`
		Name       string `json:"name"`
		Type       string `json:"type"`
		PowerState int    `json:"power_state"`
		Show       string `json:"show"`
	}
	var rows []row
	for _, bow := range cfg.Backyard.BodiesOfWater {
		for _, l := range bow.ColorLogicLight {
			r := row{SystemID: l.SystemID, BowID: bow.SystemID, Name: l.Name, Type: string(l.Type)}
			for _, t := range snap.ColorLogicLight {
				if t.SystemID == l.SystemID {
					r.PowerState = int(t.PowerState())
					r.Show = t.ShowName(l.Type, l.V2Active)
				}
			}
			rows = append(rows, r)
		}
	}
	return printRows(rows, func() []string {
		var lines []string
		for _, r := range rows {
			lines = append(lines, fmt.Sprintf("[%d] %-20s bow=%-4d type=%-14s power=%-4d show=%s",
				r.SystemID, r.Name, r.BowID, r.Type, r.PowerState, r.Show))
		}
		return lines
	})
}

func runGetRelays(cfg *mspconfig.Config, snap *telemetry.Snapshot) error {
	type row struct {
		SystemID int    `json:"system_id"`
		BowID    int    `json:"bow_system_id"`
		Name     string `json:"name"`
		Function string `json:"function"`
		State    int    `json:"state"`
	}
	var rows []row
	add := func(bowID int, rr mspconfig.Relay) {
		r := row{SystemID: rr.SystemID, BowID: bowID, Name: rr.Name, Function: string(rr.Function)}
		for _, t := range snap.Relay {
			if t.SystemID == rr.SystemID {
				r.State = t.State
			}
		}
		rows = append(rows, r)
	}
	for _, r := range cfg.Backyard.Relay {
		add(0, r)
	}
	for _, bow := range cfg.Backyard.BodiesOfWater {
		for _, r := range bow.Relay {
			add(bow.SystemID, r)
		}
	}
	return printRows(rows, func() []string {
		var lines []string
		for _, r := range rows {
			lines = append(lines, fmt.Sprintf("[%d] %-20s bow=%-4d function=%-14s state=%d",
				r.SystemID, r.Name, r.BowID, r.Function, r.State))
		}
		return lines
	})
}

func runGetCSADs(cfg *mspconfig.Config, snap *telemetry.Snapshot) error {
	type row struct {
		SystemID int    `json:"system_id"`
		BowID    int    `json:"bow_system_id"`
		Name     string `json:"name"`
		Type     string `json:"type"`
		PH       int    `json:"ph"`
		ORP      int    `json:"orp"`
	}
	var rows []row
	for _, bow := range cfg.Backyard.BodiesOfWater {
		for _, c := range bow.CSAD {
			r := row{SystemID: c.SystemID, BowID: bow.SystemID, Name: c.Name, Type: string(c.Type)}
			for _, t := range snap.CSAD {
				if t.SystemID == c.SystemID {
					r.PH = t.PH
					r.ORP = t.ORP
				}
			}
			rows = append(rows, r)
		}
	}
	return printRows(rows, func() []string {
		var lines []string
		for _, r := range rows {
			lines = append(lines, fmt.Sprintf("[%d] %-20s bow=%-4d type=%-10s ph=%-6d orp=%d",
				r.SystemID, r.Name, r.BowID, r.Type, r.PH, r.ORP))
		}
		return lines
	})
}

func runGetSensors(cfg *mspconfig.Config, _ *telemetry.Snapshot) error {
	type row struct {
		SystemID int    `json:"system_id"`
		BowID    int    `json:"bow_system_id"`
		Name     string `json:"name"`
		Type     string `json:"type"`
		Units    string `json:"units"`
	}
	var rows []row
	add := func(bowID int, s mspconfig.Sensor) {
		rows = append(rows, row{SystemID: s.SystemID, BowID: bowID, Name: s.Name, Type: string(s.Type), Units: string(s.Units)})
	}
	for _, s := range cfg.Backyard.Sensor {
		add(0, s)
	}
	for _, bow := range cfg.Backyard.BodiesOfWater {
		for _, s := range bow.Sensor {
			add(bow.SystemID, s)
		}
	}
	return printRows(rows, func() []string {
		var lines []string
		for _, r := range rows {
			lines = append(lines, fmt.Sprintf("[%d] %-20s bow=%-4d type=%-14s units=%s",
				r.SystemID, r.Name, r.BowID, r.Type, r.Units))
		}
		return lines
	})
}

func runGetGroups(cfg *mspconfig.Config, snap *telemetry.Snapshot) error {
	type row struct {
		SystemID int    `json:"system_id"`
		Name     string `json:"name"`
		State    int    `json:"state"`
	}
	var rows []row
	for _, g := range cfg.Backyard.Group {
		r := row{SystemID: g.SystemID, Name: g.Name}
		for _, t := range snap.Group {
			if t.SystemID == g.SystemID {
				r.State = t.State
			}
		}
		rows = append(rows, r)
	}
	return printRows(rows, func() []string {
		var lines []string
		for _, r := range rows {
			lines = append(lines, fmt.Sprintf("[%d] %-20s state=%d", r.SystemID, r.Name, r.State))
		}
		return lines
	})
}

func runGetSchedules(cfg *mspconfig.Config, _ *telemetry.Snapshot) error {
	return printRows(cfg.Backyard.Schedule, func() []string {
		var lines []string
		for _, s := range cfg.Backyard.Schedule {
			lines = append(lines, fmt.Sprintf("[%d] bow=%-4d equipment=%-4d action=%-4d %02d:%02d-%02d:%02d days=%d",
				s.SystemID, s.BoWID, s.EquipmentID, s.ActionID,
				s.StartTimeHours, s.StartTimeMinutes, s.EndTimeHours, s.EndTimeMinutes, s.DaysActive))
		}
		return lines
	})
}

func runGetValves(_ *mspconfig.Config, snap *telemetry.Snapshot) error {
	return printRows(snap.ValveActuator, func() []string {
		var lines []string
		for _, v := range snap.ValveActuator {
			lines = append(lines, fmt.Sprintf("[%d] state=%d why_on=%d", v.SystemID, v.State, v.WhyOn))
		}
		return lines
	})
}
