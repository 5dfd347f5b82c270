package omnitypes

// OmniType discriminates the kind of equipment node under an
// <Operation> or telemetry element.
type OmniType string

const (
	OmniTypeBackyard         OmniType = "Backyard"
	OmniTypeBoW              OmniType = "BodyOfWater"
	OmniTypeBoWMSP           OmniType = "Body-of-water"
	OmniTypeChlorinator      OmniType = "Chlorinator"
	OmniTypeChlorinatorEquip OmniType = "Chlorinator-Equipment"
	OmniTypeCSAD             OmniType = "CSAD"
	OmniTypeCLLight          OmniType = "ColorLogic-Light"
	OmniTypeFavorites        OmniType = "Favorites"
	OmniTypeFilter           OmniType = "Filter"
	OmniTypeGroup            OmniType = "Group"
	OmniTypeGroups           OmniType = "Groups"
	OmniTypeHeater           OmniType = "Heater"
	OmniTypeHeaterEquip      OmniType = "Heater-Equipment"
	OmniTypePump             OmniType = "Pump"
	OmniTypeRelay            OmniType = "Relay"
	OmniTypeSche             OmniType = "sche"
	OmniTypeSchedule         OmniType = "Schedule"
	OmniTypeSensor           OmniType = "Sensor"
	OmniTypeSystem           OmniType = "System"
	OmniTypeValveActuator    OmniType = "ValveActuator"
	OmniTypeVirtHeater       OmniType = "VirtualHeater"
)

// BackyardState is the overall controller operating mode.
type BackyardState int

const (
	BackyardStateOff               BackyardState = 0
	BackyardStateOn                BackyardState = 1
	BackyardStateServiceMode       BackyardState = 2
	BackyardStateConfigMode        BackyardState = 3
	BackyardStateTimedServiceMode  BackyardState = 4
)

// BodyOfWaterState reports whether a body of water has flow.
type BodyOfWaterState int

const (
	BodyOfWaterStateNoFlow BodyOfWaterState = 0
	BodyOfWaterStateFlow   BodyOfWaterState = 1
)

// BodyOfWaterType distinguishes a pool from a spa.
type BodyOfWaterType string

const (
	BodyOfWaterTypePool BodyOfWaterType = "BOW_POOL"
	BodyOfWaterTypeSpa  BodyOfWaterType = "BOW_SPA"
)

// FilterState is a filter pump's detailed operating state.
type FilterState int

const (
	FilterStateOff                  FilterState = 0
	FilterStateOn                   FilterState = 1
	FilterStatePriming              FilterState = 2
	FilterStateWaitingTurnOff       FilterState = 3
	FilterStateWaitingTurnOffManual FilterState = 4
	FilterStateHeaterExtend         FilterState = 5
	FilterStateCooldown             FilterState = 6
	FilterStateSuspend              FilterState = 7
	FilterStateCSADExtend           FilterState = 8
	FilterStateSuperchlorinate      FilterState = 9
	FilterStateForcePriming         FilterState = 10
	FilterStateWaitingTurnOffAlt    FilterState = 11
)

// FilterType identifies a filter pump's drive type.
type FilterType string

const (
	FilterTypeVariableSpeed FilterType = "FMT_VARIABLE_SPEED_PUMP"
	FilterTypeDualSpeed     FilterType = "FMT_DUAL_SPEED"
	FilterTypeSingleSpeed   FilterType = "FMT_SINGLE_SPEED"
)

// FilterValvePosition is the valve routing a filter is configured for.
type FilterValvePosition int

const (
	FilterValvePositionPoolOnly    FilterValvePosition = 1
	FilterValvePositionSpaOnly     FilterValvePosition = 2
	FilterValvePositionSpillover   FilterValvePosition = 3
	FilterValvePositionLowPrioHeat FilterValvePosition = 4
	FilterValvePositionHighPrioHeat FilterValvePosition = 5
)

// FilterWhyOn explains why a filter is currently running.
type FilterWhyOn int

const (
	FilterWhyOnOff                  FilterWhyOn = 0
	FilterWhyOnNoWaterFlow          FilterWhyOn = 1
	FilterWhyOnCooldown             FilterWhyOn = 2
	FilterWhyOnPHReduceExtend       FilterWhyOn = 3
	FilterWhyOnHeaterExtend         FilterWhyOn = 4
	FilterWhyOnPaused               FilterWhyOn = 5
	FilterWhyOnValveChanging        FilterWhyOn = 6
	FilterWhyOnForceHighSpeed       FilterWhyOn = 7
	FilterWhyOnOffExternalInterlock FilterWhyOn = 8
	FilterWhyOnSuperchlorinate      FilterWhyOn = 9
	FilterWhyOnCountdown            FilterWhyOn = 10
	FilterWhyOnManualOn             FilterWhyOn = 11
	FilterWhyOnManualSpillover      FilterWhyOn = 12
	FilterWhyOnTimerSpillover       FilterWhyOn = 13
	FilterWhyOnTimerOn              FilterWhyOn = 14
	FilterWhyOnFreezeProtect        FilterWhyOn = 15
	FilterWhyOnUnknown16            FilterWhyOn = 16
	FilterWhyOnUnknown17            FilterWhyOn = 17
	FilterWhyOnUnknown18            FilterWhyOn = 18
)

// HeaterState is a virtual heater's equipment-level on/off/pause state.
type HeaterState int

const (
	HeaterStateOff   HeaterState = 0
	HeaterStateOn    HeaterState = 1
	HeaterStatePause HeaterState = 2
)

// HeaterType identifies the physical heating technology.
type HeaterType string

const (
	HeaterTypeGas        HeaterType = "HTR_GAS"
	HeaterTypeHeatPump   HeaterType = "HTR_HEAT_PUMP"
	HeaterTypeSolar      HeaterType = "HTR_SOLAR"
	HeaterTypeElectric   HeaterType = "HTR_ELECTRIC"
	HeaterTypeGeothermal HeaterType = "HTR_GEOTHERMAL"
	HeaterTypeSmart      HeaterType = "HTR_SMART"
)

// HeaterMode is a virtual heater's commanded mode.
type HeaterMode int

const (
	HeaterModeHeat HeaterMode = 0
	HeaterModeCool HeaterMode = 1
	HeaterModeAuto HeaterMode = 2
)

// PumpState is a standalone pump's on/off state.
type PumpState int

const (
	PumpStateOff PumpState = 0
	PumpStateOn  PumpState = 1
)

// PumpType identifies a pump's drive type.
type PumpType string

const (
	PumpTypeSingleSpeed   PumpType = "PMP_SINGLE_SPEED"
	PumpTypeDualSpeed     PumpType = "PMP_DUAL_SPEED"
	PumpTypeVariableSpeed PumpType = "PMP_VARIABLE_SPEED_PUMP"
)

// PumpFunction describes what a pump is plumbed to drive.
type PumpFunction string

const (
	PumpFunctionPump            PumpFunction = "PMP_PUMP"
	PumpFunctionWaterFeature    PumpFunction = "PMP_WATER_FEATURE"
	PumpFunctionCleaner         PumpFunction = "PMP_CLEANER"
	PumpFunctionWaterSlide      PumpFunction = "PMP_WATER_SLIDE"
	PumpFunctionWaterfall       PumpFunction = "PMP_WATERFALL"
	PumpFunctionLaminars        PumpFunction = "PMP_LAMINARS"
	PumpFunctionFountain        PumpFunction = "PMP_FOUNTAIN"
	PumpFunctionJets            PumpFunction = "PMP_JETS"
	PumpFunctionBlower          PumpFunction = "PMP_BLOWER"
	PumpFunctionAccessory       PumpFunction = "PMP_ACCESSORY"
	PumpFunctionCleanerPressure PumpFunction = "PMP_CLEANER_PRESSURE"
	PumpFunctionCleanerSuction  PumpFunction = "PMP_CLEANER_SUCTION"
	PumpFunctionCleanerRobotic  PumpFunction = "PMP_CLEANER_ROBOTIC"
	PumpFunctionCleanerInFloor  PumpFunction = "PMP_CLEANER_IN_FLOOR"
)

// RelayFunction describes what a relay is wired to control.
type RelayFunction string

const (
	RelayFunctionWaterFeature    RelayFunction = "RLY_WATER_FEATURE"
	RelayFunctionLight           RelayFunction = "RLY_LIGHT"
	RelayFunctionBackyardLight   RelayFunction = "RLY_BACKYARD_LIGHT"
	RelayFunctionPoolLight       RelayFunction = "RLY_POOL_LIGHT"
	RelayFunctionCleaner         RelayFunction = "RLY_CLEANER"
	RelayFunctionWaterSlide      RelayFunction = "RLY_WATER_SLIDE"
	RelayFunctionWaterfall       RelayFunction = "RLY_WATERFALL"
	RelayFunctionLaminars        RelayFunction = "RLY_LAMINARS"
	RelayFunctionFountain        RelayFunction = "RLY_FOUNTAIN"
	RelayFunctionFirepit         RelayFunction = "RLY_FIREPIT"
	RelayFunctionJets            RelayFunction = "RLY_JETS"
	RelayFunctionBlower          RelayFunction = "RLY_BLOWER"
	RelayFunctionAccessory       RelayFunction = "RLY_ACCESSORY"
	RelayFunctionCleanerPressure RelayFunction = "RLY_CLEANER_PRESSURE"
	RelayFunctionCleanerSuction  RelayFunction = "RLY_CLEANER_SUCTION"
	RelayFunctionCleanerRobotic  RelayFunction = "RLY_CLEANER_ROBOTIC"
	RelayFunctionCleanerInFloor  RelayFunction = "RLY_CLEANER_IN_FLOOR"
)

// RelayState is a relay's on/off state.
type RelayState int

const (
	RelayStateOff RelayState = 0
	RelayStateOn  RelayState = 1
)

// RelayType identifies a relay's electrical class.
type RelayType string

const (
	RelayTypeValveActuator RelayType = "RLY_VALVE_ACTUATOR"
	RelayTypeHighVoltage   RelayType = "RLY_HIGH_VOLTAGE_RELAY"
	RelayTypeLowVoltage    RelayType = "RLY_LOW_VOLTAGE_RELAY"
)

// RelayWhyOn explains why a relay is currently energized.
type RelayWhyOn int

const (
	RelayWhyOnOff                 RelayWhyOn = 0
	RelayWhyOnOn                  RelayWhyOn = 1
	RelayWhyOnFreezeProtect       RelayWhyOn = 2
	RelayWhyOnWaitingForInterlock RelayWhyOn = 3
	RelayWhyOnPaused              RelayWhyOn = 4
	RelayWhyOnWaitingForFilter    RelayWhyOn = 5
)

// SensorType identifies the measurement a sensor reports.
type SensorType string

const (
	SensorTypeAirTemp   SensorType = "SENSOR_AIR_TEMP"
	SensorTypeSolarTemp SensorType = "SENSOR_SOLAR_TEMP"
	SensorTypeWaterTemp SensorType = "SENSOR_WATER_TEMP"
	SensorTypeFlow      SensorType = "SENSOR_FLOW"
	SensorTypeORP       SensorType = "SENSOR_ORP"
	SensorTypeExtInput  SensorType = "SENSOR_EXT_INPUT"
)

// SensorUnits identifies the unit a sensor's value is reported in.
type SensorUnits string

const (
	SensorUnitsFahrenheit     SensorUnits = "UNITS_FAHRENHEIT"
	SensorUnitsCelsius        SensorUnits = "UNITS_CELSIUS"
	SensorUnitsPPM            SensorUnits = "UNITS_PPM"
	SensorUnitsGramsPerLiter  SensorUnits = "UNITS_GRAMS_PER_LITER"
	SensorUnitsMillivolts     SensorUnits = "UNITS_MILLIVOLTS"
	SensorUnitsNoUnits        SensorUnits = "UNITS_NO_UNITS"
	SensorUnitsActiveInactive SensorUnits = "UNITS_ACTIVE_INACTIVE"
)

// ValveActuatorState is a valve actuator's on/off state.
type ValveActuatorState int

const (
	ValveActuatorStateOff ValveActuatorState = 0
	ValveActuatorStateOn  ValveActuatorState = 1
)

// CSADType distinguishes the chemistry a CSAD controller dispenses.
type CSADType string

const (
	CSADTypeAcid CSADType = "ACID"
	CSADTypeCO2  CSADType = "CO2"
)

// CSADStatus reports whether a CSAD controller is currently dispensing.
type CSADStatus int

const (
	CSADStatusNotDispensing CSADStatus = 0
	CSADStatusDispensing    CSADStatus = 1
)

// CSADMode is a CSAD controller's operating mode.
type CSADMode int

const (
	CSADModeOff           CSADMode = 0
	CSADModeAuto          CSADMode = 1
	CSADModeForceOn       CSADMode = 2
	CSADModeMonitoring    CSADMode = 3
	CSADModeDispensingOff CSADMode = 4
)
