package model

import "time"

const (
	TableNameFarm          = "farms"
	TableNameFarmBuilding  = "farm_buildings"
	TableNameFarmObject    = "farm_objects"
	TableNameBowlRecord    = "bowl_records"
	TableNameDomainEvent   = "domain_events"
	TableNameWorldDayState = "world_day_states"
)

type Farm struct {
	FarmID    string    `gorm:"column:farm_id;primaryKey" json:"farm_id"`
	Day       int32     `gorm:"column:day;not null;default:1" json:"day"`
	Weather   string    `gorm:"column:weather;not null;default:sunny" json:"weather"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

func (*Farm) TableName() string { return TableNameFarm }

type FarmBuilding struct {
	FarmID     string `gorm:"column:farm_id;primaryKey" json:"farm_id"`
	BuildingID string `gorm:"column:building_id;primaryKey" json:"building_id"`
	Kind       string `gorm:"column:kind;not null" json:"kind"`
	X          int32  `gorm:"column:x;not null" json:"x"`
	Y          int32  `gorm:"column:y;not null" json:"y"`
	Width      int32  `gorm:"column:width;not null" json:"width"`
	Height     int32  `gorm:"column:height;not null" json:"height"`
	Watered    bool   `gorm:"column:watered;not null;default:false" json:"watered"`
}

func (*FarmBuilding) TableName() string { return TableNameFarmBuilding }

type FarmObject struct {
	FarmID   string  `gorm:"column:farm_id;primaryKey" json:"farm_id"`
	ObjectID string  `gorm:"column:object_id;primaryKey" json:"object_id"`
	Kind     string  `gorm:"column:kind;not null" json:"kind"`
	X        int32   `gorm:"column:x;not null" json:"x"`
	Y        int32   `gorm:"column:y;not null" json:"y"`
	Radius   float64 `gorm:"column:radius;not null;default:0" json:"radius"`
}

func (*FarmObject) TableName() string { return TableNameFarmObject }

type BowlRecord struct {
	FarmID         string    `gorm:"column:farm_id;primaryKey" json:"farm_id"`
	BowlID         string    `gorm:"column:bowl_id;primaryKey" json:"bowl_id"`
	LastFilledDay  int32     `gorm:"column:last_filled_day;not null;default:0" json:"last_filled_day"`
	StartedWatered bool      `gorm:"column:started_watered;not null;default:false" json:"started_watered"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

func (*BowlRecord) TableName() string { return TableNameBowlRecord }

type DomainEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	FarmID     string    `gorm:"column:farm_id;not null" json:"farm_id"`
	Type       string    `gorm:"column:type;not null" json:"type"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null" json:"occurred_at"`
	Payload    []byte    `gorm:"column:payload;type:jsonb;not null" json:"payload"`
}

func (*DomainEvent) TableName() string { return TableNameDomainEvent }

type WorldDayState struct {
	StateKey  string    `gorm:"column:state_key;primaryKey" json:"state_key"`
	LastDay   int32     `gorm:"column:last_day;not null" json:"last_day"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()" json:"updated_at"`
}

func (*WorldDayState) TableName() string { return TableNameWorldDayState }
