package agc150

import "github.com/obsenv/gensetmon/modbusaccess"

// Registers is the AGC 150 register map, taken from DEIF's Modbus tables for
// the AGC 150 genset controller. Field names follow the manufacturer's
// documentation. Values arrive as signed 16-bit integers scaled by a
// per-field decimal factor; the energy counters and running-hour counters
// span two registers.
var Registers = modbusaccess.RegisterMap{
	// ---- Discrete inputs: breaker, mode and alarm status bits ----
	bit("gbPositionOn", 0),
	bit("mbPositionOn", 1),
	bit("running", 3),
	bit("generatorVoltageFrequencyOk", 4),
	bit("mainFailure", 5),
	bit("blockMode", 6),
	bit("manualMode", 7),
	bit("semiAutoMode", 8),
	bit("autoMode", 9),
	bit("testMode", 10),
	bit("gbPositionOff", 11),
	bit("mbPositionOff", 12),
	bit("island", 13),
	bit("automaticMainsFailure", 14),
	bit("peakShaving", 15),
	bit("fixedPower", 16),
	bit("mainsPowerExport", 17),
	bit("loadTakeover", 18),
	bit("powerManagement", 19),
	bit("anyAlarmPMS1", 20),
	bit("anyAlarmPMS2", 21),
	bit("anyAlarmPMS3", 22),
	bit("anyAlarmPMS4", 23),
	bit("anyAlarmPMS5", 24),
	bit("anyAlarmPMS6", 25),
	bit("anyAlarmPMS7", 26),
	bit("anyAlarmPMS8", 27),
	bit("anyAlarmMains", 28),
	bit("batteryTest", 29),
	bit("readyAutoStartDG1", 31),
	bit("readyAutoStartDG2", 32),
	bit("readyAutoStartDG3", 33),
	bit("readyAutoStartDG4", 34),
	bit("readyAutoStartDG5", 35),
	bit("readyAutoStartDG6", 36),
	bit("readyAutoStartDG7", 37),
	bit("readyAutoStartDG8", 38),
	bit("mainSyncInhibit", 53),
	bit("anyMainsSyncInhibit", 54),

	// ---- Input registers: generator electrical values ----
	reg("applicationVersion", 500, 0, ""),
	reg("generatorVoltageL1L2", 501, 0, "V"),
	reg("generatorVoltageL2L3", 502, 0, "V"),
	reg("generatorVoltageL3L1", 503, 0, "V"),
	reg("generatorVoltageL1N", 504, 0, "V"),
	reg("generatorVoltageL2N", 505, 0, "V"),
	reg("generatorVoltageL3N", 506, 0, "V"),
	reg("generatorFrequencyL1", 507, 2, "Hz"),
	reg("generatorFrequencyL2", 508, 2, "Hz"),
	reg("generatorFrequencyL3", 509, 2, "Hz"),
	reg("generatorVoltagePhaseAngleL1L2", 510, 1, "deg"),
	reg("generatorVoltagePhaseAngleL2L3", 511, 1, "deg"),
	reg("generatorVoltagePhaseAngleL3L1", 512, 1, "deg"),
	reg("generatorCurrentL1", 513, 0, "A"),
	reg("generatorCurrentL2", 514, 0, "A"),
	reg("generatorCurrentL3", 515, 0, "A"),
	reg("generatorPowerL1", 516, 0, "kW"),
	reg("generatorPowerL2", 517, 0, "kW"),
	reg("generatorPowerL3", 518, 0, "kW"),
	reg("generatorPower", 519, 0, "kW"),
	reg("generatorReactivePowerL1", 520, 0, "kvar"),
	reg("generatorReactivePowerL2", 521, 0, "kvar"),
	reg("generatorReactivePowerL3", 522, 0, "kvar"),
	reg("generatorReactivePower", 523, 0, "kvar"),
	reg("generatorApparentPowerL1", 524, 0, "kVA"),
	reg("generatorApparentPowerL2", 525, 0, "kVA"),
	reg("generatorApparentPowerL3", 526, 0, "kVA"),
	reg("generatorApparentPower", 527, 0, "kVA"),
	counter("generatorExportReactiveEnergyCounterTotal", 528, "kvarh"),
	counter("generatorExportActiveEnergyCounterDay", 530, "kWh"),
	counter("generatorExportActiveEnergyCounterWeek", 532, "kWh"),
	counter("generatorExportActiveEnergyCounterMonth", 534, "kWh"),
	counter("generatorExportActiveEnergyCounterTotal", 536, "kWh"),
	reg("generatorPF", 538, 2, ""),

	// ---- Input registers: busbar values ----
	reg("busBVoltageL1L2", 539, 0, "V"),
	reg("busBVoltageL2L3", 540, 0, "V"),
	reg("busBVoltageL3L1", 541, 0, "V"),
	reg("busBVoltageL1N", 542, 0, "V"),
	reg("busBVoltageL2N", 543, 0, "V"),
	reg("busBVoltageL3N", 544, 0, "V"),
	reg("busBFrequencyL1", 545, 2, "Hz"),
	reg("busBFrequencyL2", 546, 2, "Hz"),
	reg("busBFrequencyL3", 547, 2, "Hz"),
	reg("busBVoltagePhaseAngleL1L2", 548, 1, "deg"),
	reg("busBVoltagePhaseAngleL2L3", 549, 1, "deg"),
	reg("busBVoltagePhaseAngleL3L1", 550, 1, "deg"),
	reg("uBBL1uGENL1PhaseAngle", 551, 0, "deg"),
	reg("uBBL2uGENL2PhaseAngle", 552, 0, "deg"),
	reg("uBBL3uGENL3PhaseAngle", 553, 0, "deg"),

	// ---- Input registers: counters, timers and supply ----
	counter("absoluteRunningHours", 554, "h"),
	counter("relativeRunningHours", 556, "h"),
	reg("numberAlarms", 558, 0, ""),
	reg("numberUnacknowledgedAlarms", 559, 0, ""),
	reg("numberActiveAcknowledgedAlarms", 560, 0, ""),
	reg("numberGBOperations", 563, 0, ""),
	reg("numberMBOperations", 564, 0, ""),
	reg("startAttempts", 566, 0, ""),
	reg("dcSupplyTerm12", 567, 1, "V"),
	reg("serviceTimer1RunningHours", 569, 0, "h"),
	reg("serviceTimer1RunningDays", 570, 0, "d"),
	reg("serviceTimer2RunningHours", 571, 0, "h"),
	reg("serviceTimer2RunningDays", 572, 0, "d"),
	reg("cosPhi", 573, 2, ""),
	reg("cosPhiType", 574, 0, ""),
	reg("rpm", 576, 0, "rpm"),
	reg("runningHoursLoadProfile", 577, 0, "h"),
	reg("multiInput20", 583, 0, ""),
	reg("multiInput21", 584, 0, ""),
	reg("multiInput22", 585, 0, ""),
	reg("multiInput23", 587, 0, ""),
	reg("mainsPower", 592, 0, "kW"),

	// ---- Input registers: engine values (J1939 sourced) ----
	reg("engineSpeed", 593, 0, "rpm"),
	reg("engineCoolantTemperature", 594, 1, "C"),
	reg("engineOilPressure", 595, 2, "bar"),
	reg("numberActualFaults", 596, 0, ""),
	reg("engineOilTemperature", 597, 1, "C"),
	reg("fuelTemperature", 598, 0, "C"),
	reg("intakeManifold1Pressure", 599, 2, "bar"),
	reg("airInletTemperature", 600, 0, "C"),
	reg("coolantLevel", 601, 1, "%"),
	reg("fuelRate", 602, 1, "L/h"),
	reg("chargeAirPressure", 603, 0, "bar"),
	reg("intakeManifold1Temperature", 604, 0, "C"),
	reg("driversDemandEnginePercentTorque", 605, 0, "%"),
	reg("actualEnginePercentTorque", 606, 0, "%"),
	reg("acceleratorPedalPosition", 607, 0, "%"),
	reg("percentLoadCurrentSpeed", 608, 0, "%"),
	reg("airInletPressure", 609, 2, "bar"),
	reg("exhaustGasTemperature", 610, 1, "C"),
	reg("engineHours", 611, 0, "h"),
	reg("engineOilFilterDifferentialPressure", 612, 2, "bar"),
	reg("keyswitchBatteryPotential", 613, 1, "V"),
	reg("fuelDeliveryPressure", 614, 2, "bar"),
	reg("engineOilLevel", 615, 1, "%"),
	reg("crankcasePressure", 616, 2, "bar"),
	reg("coolantPressure", 617, 2, "bar"),
	reg("waterInFuel", 618, 0, ""),
	reg("blowbyFlow", 619, 0, "L/h"),
	reg("fuelRailPressure", 620, 0, "bar"),
	reg("timingRailPressure", 621, 0, "bar"),
	reg("aftercoolerWaterInletTemperature", 622, 0, "C"),
	reg("turboOilTemperature", 623, 1, "C"),
	reg("particulateTrapInletPressure", 624, 2, "bar"),
	reg("airFilterDifferentialPressure", 625, 3, "bar"),
	reg("coolantFilterDifferentialPressure", 626, 2, "bar"),
	reg("atmosphericPressure", 627, 2, "bar"),
	reg("ambientAirTemperature", 628, 1, "C"),
	reg("exhaustTemperatureRight", 629, 1, "C"),
	reg("exhaustTemperatureLeft", 630, 1, "C"),
	reg("windingTemperature1", 631, 0, "C"),
	reg("windingTemperature2", 632, 0, "C"),
	reg("windingTemperature3", 633, 0, "C"),
	reg("auxiliaryAnalogInfo", 634, 0, ""),
	reg("engineTurbocharger1CompressorOutletTemperature", 636, 0, "C"),
	reg("engineIntercoolerTemperature", 637, 0, "C"),
	reg("engineTripFuel", 638, 0, "L"),
	reg("engineTotalFuel", 639, 1, "L"),
	reg("tripFuelGasseous", 640, 0, "kg"),
	reg("totalFuelGasseous", 641, 1, "kg"),
}

// bit builds a discrete input field.
func bit(name string, addr uint16) modbusaccess.Field {
	return modbusaccess.Field{
		Name:         name,
		Table:        modbusaccess.DiscreteInput,
		StartAddr:    addr,
		NumRegisters: 1,
		DataType:     modbusaccess.BitType,
	}
}

// reg builds a single input register field scaled by 10^factor.
func reg(name string, addr uint16, factor int, unit string) modbusaccess.Field {
	dataType := modbusaccess.Int16Type
	if factor != 0 {
		dataType = modbusaccess.ScaledInt16Type(factor)
	}
	return modbusaccess.Field{
		Name:         name,
		Table:        modbusaccess.InputRegister,
		StartAddr:    addr,
		NumRegisters: 1,
		DataType:     dataType,
		Unit:         unit,
	}
}

// counter builds a two-register unsigned counter field.
func counter(name string, addr uint16, unit string) modbusaccess.Field {
	return modbusaccess.Field{
		Name:         name,
		Table:        modbusaccess.InputRegister,
		StartAddr:    addr,
		NumRegisters: 2,
		DataType:     modbusaccess.Uint32Type,
		Unit:         unit,
	}
}
