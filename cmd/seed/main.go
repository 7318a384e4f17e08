package main

import (
	"context"
	"fmt"
	"os"

	"github.com/levenlabs/go-lflag"

	"github.com/chargeplan/chargeplan/pkg/catalog"
	"github.com/chargeplan/chargeplan/pkg/engine"
	"github.com/chargeplan/chargeplan/pkg/log"
	"github.com/chargeplan/chargeplan/pkg/storage"
	"github.com/chargeplan/chargeplan/pkg/types"
)

func main() {
	os.Setenv("FIRESTORE_EMULATOR_HOST", "127.0.0.1:8087")
	s := storage.Configured()
	projectID := lflag.String("seed-project-id", "demo", "document ID to write the demo project under")
	lflag.Configure()

	ctx := context.Background()

	log.Ctx(ctx).InfoContext(ctx, "seeding demo project", "projectID", *projectID)

	charger, err := catalog.ChargerByID("l2-48a-dp-pedestal")
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to resolve demo charger", "error", err)
		os.Exit(1)
	}
	voltage := 240
	powerKw := catalog.KwForVoltage(charger, voltage)

	usage := types.UsageInputs{
		PortsInUse:   2,
		HoursPerPort: 4,
		PeakPorts:    4,
		DaysInMonth:  30,
		TOU:          engine.AllocateTOU(2, 4),
	}

	project := types.Project{
		Name:         "Demo Site",
		Utility:      "national-grid",
		ServiceClass: "SC-2D",
		Equipment: []types.EquipmentEntry{
			{
				ID:                 "demo-chargers",
				ChargerID:          charger.ID,
				Level:              charger.Level,
				PowerKw:            powerKw,
				PlugsPerUnit:       charger.PlugsPerUnit,
				Quantity:           2,
				IndividualCircuits: true,
				Voltage:            voltage,
			},
		},
		MeteringType:  types.MeteringSeparate,
		Usage:         usage,
		OwnershipType: types.OwnershipCustomer,
	}

	if err := s.SetProject(ctx, *projectID, project, types.CurrentProjectVersion); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to seed project", "error", err)
		os.Exit(1)
	}

	res, err := engine.Compute(project)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to compute demo project", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Seeded project %q: %.2f kW nameplate, %.0f kWh/yr, tier %d\n",
		*projectID, res.NameplateKw, res.AnnualKwhEstimate, res.Tier)

	log.Ctx(ctx).InfoContext(ctx, "seeded demo project successfully")
}
