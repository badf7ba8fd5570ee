package agc150

import "github.com/obsenv/gensetmon/simulator"

// defaultDiscreteInputs are the status bits of a healthy genset running in
// auto mode with its generator breaker closed.
var defaultDiscreteInputs = map[string]bool{
	"gbPositionOn":                true,
	"running":                     true,
	"generatorVoltageFrequencyOk": true,
	"autoMode":                    true,
	"powerManagement":             true,
	"readyAutoStartDG1":           true,
	"mbPositionOff":               true,
}

// defaultInputRegisters hold raw (pre-scaling) word values for a 400 V / 50 Hz
// genset carrying around 150 kW.
var defaultInputRegisters = map[string]uint32{
	"applicationVersion":             10308,
	"generatorVoltageL1L2":           400,
	"generatorVoltageL2L3":           401,
	"generatorVoltageL3L1":           399,
	"generatorVoltageL1N":            230,
	"generatorVoltageL2N":            231,
	"generatorVoltageL3N":            229,
	"generatorFrequencyL1":           5002, // 50.02 Hz
	"generatorFrequencyL2":           5001,
	"generatorFrequencyL3":           5002,
	"generatorVoltagePhaseAngleL1L2": 1200, // 120.0 deg
	"generatorVoltagePhaseAngleL2L3": 1200,
	"generatorVoltagePhaseAngleL3L1": 1200,
	"generatorCurrentL1":             72,
	"generatorCurrentL2":             73,
	"generatorCurrentL3":             72,
	"generatorPowerL1":               50,
	"generatorPowerL2":               51,
	"generatorPowerL3":               49,
	"generatorPower":                 150,
	"generatorReactivePowerL1":       10,
	"generatorReactivePowerL2":       11,
	"generatorReactivePowerL3":       10,
	"generatorReactivePower":         31,
	"generatorApparentPowerL1":       51,
	"generatorApparentPowerL2":       52,
	"generatorApparentPowerL3":       50,
	"generatorApparentPower":         153,
	"generatorExportReactiveEnergyCounterTotal": 4210,
	"generatorExportActiveEnergyCounterDay":     320,
	"generatorExportActiveEnergyCounterWeek":    2150,
	"generatorExportActiveEnergyCounterMonth":   9840,
	"generatorExportActiveEnergyCounterTotal":   183200,
	"generatorPF":                      98, // 0.98
	"busBVoltageL1L2":                  400,
	"busBVoltageL2L3":                  400,
	"busBVoltageL3L1":                  400,
	"busBVoltageL1N":                   230,
	"busBVoltageL2N":                   230,
	"busBVoltageL3N":                   230,
	"busBFrequencyL1":                  5000,
	"busBFrequencyL2":                  5000,
	"busBFrequencyL3":                  5000,
	"busBVoltagePhaseAngleL1L2":        1200,
	"busBVoltagePhaseAngleL2L3":        1200,
	"busBVoltagePhaseAngleL3L1":        1200,
	"absoluteRunningHours":             1245,
	"relativeRunningHours":             310,
	"numberGBOperations":               87,
	"numberMBOperations":               45,
	"startAttempts":                    102,
	"dcSupplyTerm12":                   241, // 24.1 V
	"serviceTimer1RunningHours":        190,
	"serviceTimer1RunningDays":         64,
	"serviceTimer2RunningHours":        440,
	"serviceTimer2RunningDays":         151,
	"cosPhi":                           98,
	"cosPhiType":                       1,
	"rpm":                              1500,
	"runningHoursLoadProfile":          1100,
	"mainsPower":                       20,
	"engineSpeed":                      1500,
	"engineCoolantTemperature":         825, // 82.5 C
	"engineOilPressure":                450, // 4.50 bar
	"engineOilTemperature":             910,
	"fuelTemperature":                  31,
	"intakeManifold1Pressure":          120,
	"airInletTemperature":              28,
	"coolantLevel":                     987,
	"fuelRate":                         382, // 38.2 L/h
	"intakeManifold1Temperature":       46,
	"driversDemandEnginePercentTorque": 62,
	"actualEnginePercentTorque":        61,
	"percentLoadCurrentSpeed":          58,
	"exhaustGasTemperature":            4350,
	"engineHours":                      1245,
	"keyswitchBatteryPotential":        241,
	"atmosphericPressure":              101,
	"ambientAirTemperature":            182,
	"windingTemperature1":              74,
	"windingTemperature2":              75,
	"windingTemperature3":              73,
	"engineTotalFuel":                  52310,
	"totalFuelGasseous":                0,
}

// DefaultSimulatorBank returns a register bank covering the full AGC 150
// register map, pre-seeded with a plausible running-genset dataset. Unlisted
// fields read as zero.
func DefaultSimulatorBank() *simulator.RegisterBank {
	bank := simulator.NewBankForMap(Registers)

	for _, field := range Registers {
		if on, ok := defaultDiscreteInputs[field.Name]; ok {
			bank.SetDiscreteInput(field.StartAddr, on)
		}
		if raw, ok := defaultInputRegisters[field.Name]; ok {
			if field.NumRegisters == 2 {
				bank.SetInputRegisterUint32(field.StartAddr, raw)
			} else {
				bank.SetInputRegister(field.StartAddr, uint16(raw))
			}
		}
	}

	return bank
}
