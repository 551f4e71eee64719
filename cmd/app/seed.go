package main

import (
	"encoding/json"

	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/routerepo"
	"dispatch/internal/adapters/out/postgres/vehiclerepo"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedFleet loads the reference fleet and route catalogue.
// Inserts are idempotent, so restarting the service leaves existing rows alone.
func seedFleet(gormDB *gorm.DB) error {
	drivers := []driverrepo.DriverDTO{
		{ID: uuid.MustParse("0f4d7c31-06c5-4f8a-8cfe-3b4e3a0d7a9c"), FirstName: "Nova", LastName: "Starlance"},
		{ID: uuid.MustParse("3dd9c391-6e3c-4d7c-9b8b-3a3d5f4a5f5b"), FirstName: "Orion", LastName: "Driftwood"},
		{ID: uuid.MustParse("c8f3a2f5-2f87-4d36-8b9c-8b8dd0d38b5c"), FirstName: "Lyra", LastName: "Astra"},
		{ID: uuid.MustParse("6c9f0b0f-5e53-4f6e-b7bb-5f1f3aab2a2e"), FirstName: "Cass", LastName: "Quill"},
		{ID: uuid.MustParse("ef1e47a6-89a6-4e3a-9e1f-6a8e1d7f7e6f"), FirstName: "Vega", LastName: "Skyrider"},
		{ID: uuid.MustParse("2f9c0f47-9a2b-4a24-8b0f-8b7bcd1c0bfa"), FirstName: "Altair", LastName: "Voidwalker"},
		{ID: uuid.MustParse("d0a19e46-0d2c-48b1-b2d6-6b2f7b36d6d1"), FirstName: "Rhea", LastName: "Cometborne"},
		{ID: uuid.MustParse("b1dfc3a0-1b6b-4c0c-9a46-9b8c1d8a5b8d"), FirstName: "Zara", LastName: "Redshift"},
		{ID: uuid.MustParse("9df2c5a1-7e84-4a9c-8a3b-9b6f3a1e2a4c"), FirstName: "Kepler", LastName: "Helios"},
		{ID: uuid.MustParse("8c7f52e1-24f3-4c41-9e6a-1a2c3d4e5f61"), FirstName: "Sagan", LastName: "Nightfall"},
		{ID: uuid.MustParse("2a4b6c8d-1e2f-4a3b-9c8d-1e2f3a4b5c6d"), FirstName: "Piper", LastName: "Galewing"},
		{ID: uuid.MustParse("4e5f6a7b-8c9d-4e3f-9a1b-2c3d4e5f6a7b"), FirstName: "Juno", LastName: "Farsight"},
		{ID: uuid.MustParse("5a6b7c8d-9e0f-4a1b-9c2d-3e4f5a6b7c8d"), FirstName: "Mira", LastName: "Cosma"},
		{ID: uuid.MustParse("6b7c8d9e-0f1a-4b2c-9d3e-4f5a6b7c8d9e"), FirstName: "Riley", LastName: "Starling"},
		{ID: uuid.MustParse("7c8d9e0f-1a2b-4c3d-9e4f-5a6b7c8d9e0f"), FirstName: "Sol", LastName: "Nebulon"},
		{ID: uuid.MustParse("8d9e0f1a-2b3c-4d5e-9f6a-7b8c9d0e1f2a"), FirstName: "Aria", LastName: "Kestrel"},
		{ID: uuid.MustParse("9e0f1a2b-3c4d-4e5f-9a6b-8c9d0e1f2a3b"), FirstName: "Cyrus", LastName: "Vortex"},
		{ID: uuid.MustParse("0f1a2b3c-4d5e-4f6a-9b7c-9d0e1f2a3b4c"), FirstName: "Luna", LastName: "Solaris"},
		{ID: uuid.MustParse("1a2b3c4d-5e6f-4a7b-9c8d-0e1f2a3b4c5d"), FirstName: "Nox", LastName: "Wayfarer"},
		{ID: uuid.MustParse("2b3c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d6e"), FirstName: "Taryn", LastName: "Orbitson"},
	}

	vehicles := []vehiclerepo.VehicleDTO{
		{ID: uuid.MustParse("a12b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"), RegistrationNumber: "GD-001-X"},
		{ID: uuid.MustParse("b23c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d6e"), RegistrationNumber: "NOVA-002-X"},
		{ID: uuid.MustParse("c34d5e6f-7a8b-4c9d-0e1f-2a3b4c5d6e7f"), RegistrationNumber: "ION-003-X"},
		{ID: uuid.MustParse("d45e6f7a-8b9c-4d0e-1f2a-3b4c5d6e7f8a"), RegistrationNumber: "STAR-004-X"},
		{ID: uuid.MustParse("e56f7a8b-9c0d-4e1f-2a3b-4c5d6e7f8a9b"), RegistrationNumber: "ORBIT-005-X"},
		{ID: uuid.MustParse("f67a8b9c-0d1e-4f2a-3b4c-5d6e7f8a9b0c"), RegistrationNumber: "LUX-006-X"},
		{ID: uuid.MustParse("0a7b8c9d-1e2f-4a3b-5c6d-7e8f9a0b1c2d"), RegistrationNumber: "ZEPH-007-X"},
		{ID: uuid.MustParse("1b8c9d0e-2f3a-4b5c-6d7e-8f9a0b1c2d3e"), RegistrationNumber: "PULSE-008-X"},
		{ID: uuid.MustParse("2c9d0e1f-3a4b-4c5d-6e7f-9a0b1c2d3e4f"), RegistrationNumber: "NEB-009-X"},
		{ID: uuid.MustParse("3d0e1f2a-4b5c-4d6e-7f8a-0b1c2d3e4f5a"), RegistrationNumber: "COMET-010-X"},
		{ID: uuid.MustParse("4e1f2a3b-5c6d-4e7f-8a9b-1c2d3e4f5a6b"), RegistrationNumber: "QUAS-011-X"},
		{ID: uuid.MustParse("5f2a3b4c-6d7e-4f8a-9b0c-2d3e4f5a6b7c"), RegistrationNumber: "RIFT-012-X"},
		{ID: uuid.MustParse("6a3b4c5d-7e8f-4a9b-0c1d-3e4f5a6b7c8d"), RegistrationNumber: "AST-013-X"},
		{ID: uuid.MustParse("7b4c5d6e-8f9a-4b0c-1d2e-4f5a6b7c8d9e"), RegistrationNumber: "VORT-014-X"},
		{ID: uuid.MustParse("8c5d6e7f-9a0b-4c1d-2e3f-5a6b7c8d9e0f"), RegistrationNumber: "LUMA-015-X"},
	}

	routeSeeds := []struct {
		id          string
		origin      string
		destination string
		checkpoints []string
	}{
		{"9d6e7f8a-0b1c-4d2e-3f4a-5b6c7d8e9f0a", "Luna Dock", "Mars Relay", nil},
		{"0e7f8a9b-1c2d-4e3f-4a5b-6c7d8e9f0a1b", "Europa Port", "Titan Anchorage", []string{"Aurora Gate"}},
		{"1f8a9b0c-2d3e-4f4a-5b6c-7d8e9f0a1b2c", "Ceres Hub", "Vesta Ring", []string{"Quasar Ridge", "Photon Belt"}},
		{"2a9b0c1d-3e4f-4a5b-6c7d-8e9f0a1b2c3d", "Orion Outpost", "Kepler Station", []string{"Ion Reef", "Nebula Drift", "Graviton Step"}},
		{"3b0c1d2e-4f5a-4b6c-7d8e-9f0a1b2c3d4e", "Vega Spire", "Polaris Gate", []string{"Starlight Sluice", "Comet Trail", "Void Crossing", "Solar Wake"}},
		{"4c1d2e3f-5a6b-4c7d-8e9f-0a1b2c3d4e5f", "Andromeda Waystation", "Nebula Junction", []string{"Darkmatter Node", "Echo Lattice", "Plasma Run", "Dust Halo", "Zenith Spur"}},
		{"5d2e3f4a-6b7c-4d8e-9f0a-1b2c3d4e5f6a", "Helios Terminal", "Nova Haven", nil},
		{"6e3f4a5b-7c8d-4e9f-0a1b-2c3d4e5f6a7b", "Sirius Array", "Astra Pier", []string{"Photon Belt", "Ion Reef"}},
		{"7f4a5b6c-8d9e-4f0a-1b2c-3d4e5f6a7b8c", "Pulsar Bend", "Drift Colony", []string{"Aurora Gate", "Nebula Drift", "Solar Wake"}},
		{"8a5b6c7d-9e0f-4a1b-2c3d-4e5f6a7b8c9d", "Ganymede Yard", "Io Spindle", []string{"Quasar Ridge", "Graviton Step", "Comet Trail", "Dust Halo"}},
	}

	routes := make([]routerepo.RouteDTO, 0, len(routeSeeds))
	for _, seed := range routeSeeds {
		checkpoints := seed.checkpoints
		if checkpoints == nil {
			checkpoints = []string{}
		}

		encoded, err := json.Marshal(checkpoints)
		if err != nil {
			return err
		}

		routes = append(routes, routerepo.RouteDTO{
			ID:          uuid.MustParse(seed.id),
			Origin:      seed.origin,
			Destination: seed.destination,
			Checkpoints: string(encoded),
		})
	}

	if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&drivers).Error; err != nil {
		return err
	}
	if err := gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&vehicles).Error; err != nil {
		return err
	}
	return gormDB.Clauses(clause.OnConflict{DoNothing: true}).Create(&routes).Error
}
