package team

import (
	"context"
	"errors"
	"time"

	invmodels "team-inventory/feature/inventory/models"
	"team-inventory/feature/team/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SampleTeamNumber is the demo team created by SeedSample.
const SampleTeamNumber = "1234A"

type samplePart struct {
	number, name, category string
	stock, minimum         int
	price                  string
	supplier               invmodels.Supplier
	url                    string
}

var sampleParts = []samplePart{
	{"217-2700", "VEX 84 Tooth Gear", "Gears", 10, 2, "7.99", invmodels.SupplierVexStore, "https://www.vexrobotics.com/217-2700.html"},
	{"217-2701", "VEX 60 Tooth Gear", "Gears", 8, 2, "6.99", invmodels.SupplierVexStore, "https://www.vexrobotics.com/217-2701.html"},
	{"217-2702", "VEX 36 Tooth Gear", "Gears", 15, 3, "4.99", invmodels.SupplierRoboSource, "https://www.robosource.net/217-2702"},
	{"276-2177", "VEX V5 Smart Motor", "Motors", 8, 2, "39.99", invmodels.SupplierVexStore, "https://www.vexrobotics.com/276-2177.html"},
	{"276-4840", "VEX C-Channel 1x2x1x35", "Structure", 20, 5, "8.99", invmodels.SupplierRoboSource, "https://www.robosource.net/276-4840"},
	{"276-1496", `VEX Steel Shaft 12" Long`, "Motion", 12, 3, "2.99", invmodels.SupplierVexStore, "https://www.vexrobotics.com/276-1496.html"},
	{"228-2500", `VEX Omni Wheel 4"`, "Wheels", 6, 4, "14.99", invmodels.SupplierVexStore, "https://www.vexrobotics.com/228-2500.html"},
	{"217-4245", "VEX High Strength Gear 60T", "Gears", 5, 1, "9.99", invmodels.SupplierRoboSource, "https://www.robosource.net/217-4245"},
	{"276-2169", "VEX Shaft Collar", "Motion", 30, 10, "0.99", invmodels.SupplierVexStore, "https://www.vexrobotics.com/276-2169.html"},
	{"217-3662", "VEX Sprocket 18T", "Chain & Sprockets", 8, 2, "5.99", invmodels.SupplierRoboSource, "https://www.robosource.net/217-3662"},
	{"276-4851", "VEX V5 Brain", "Electronics", 2, 1, "299.99", invmodels.SupplierVexStore, "https://www.vexrobotics.com/276-4851.html"},
	{"276-4852", "VEX V5 Controller", "Electronics", 2, 1, "149.99", invmodels.SupplierVexStore, "https://www.vexrobotics.com/276-4852.html"},
	{"276-6050", "VEX GPS Sensor", "Sensors", 1, 1, "199.99", invmodels.SupplierVexStore, "https://www.vexrobotics.com/276-6050.html"},
	{"276-4850", "VEX V5 Battery", "Electronics", 4, 2, "39.99", invmodels.SupplierRoboSource, "https://www.robosource.net/276-4850"},
}

// SeedSample creates the demo team with its members and inventory.
// It returns the existing team untouched when the demo team is already present.
func SeedSample(ctx context.Context, db *gorm.DB) (*models.Team, bool, error) {
	var existing models.Team
	err := db.WithContext(ctx).Where("number = ?", SampleTeamNumber).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	created := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	joinedLater := time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)
	team := &models.Team{
		Number:       SampleTeamNumber,
		Name:         "Cyber Knights",
		Organization: "Central High School",
		Budget:       decimal.NewFromInt(5000),
		Spent:        decimal.RequireFromString("2847.52"),
		CreatedAt:    created,
		Members: []models.Member{
			{ID: uuid.NewString(), Name: "Alex Chen", Email: "alex@example.com", Role: models.RoleCaptain, JoinedAt: created},
			{ID: uuid.NewString(), Name: "Sarah Johnson", Email: "sarah@example.com", Role: models.RoleDriver, JoinedAt: joinedLater},
			{ID: uuid.NewString(), Name: "Mike Williams", Email: "mike@example.com", Role: models.RoleBuilder, JoinedAt: joinedLater},
			{ID: uuid.NewString(), Name: "Dr. Emily Roberts", Email: "eroberts@example.com", Role: models.RoleMentor, JoinedAt: created},
		},
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		parts := make([]invmodels.Part, len(sampleParts))
		for i, p := range sampleParts {
			parts[i] = invmodels.Part{
				TeamID:      team.ID,
				PartNumber:  p.number,
				Name:        p.name,
				Category:    p.category,
				InStock:     p.stock,
				MinRequired: p.minimum,
				UnitPrice:   decimal.RequireFromString(p.price),
				Supplier:    p.supplier,
				SupplierURL: p.url,
			}
		}
		return tx.Create(&parts).Error
	})
	if err != nil {
		return nil, false, err
	}
	return team, true, nil
}
