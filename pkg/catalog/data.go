package catalog

// The fixed wind-turbine feature catalog. Raw sensor inputs feed
// physics-informed and statistical features, which in turn drive anomaly
// flags and predicted outcomes.

var defaultNodes = []FeatureNode{
	// Raw sensor inputs.
	{ID: "active_power", Label: "Active Power", Category: CategoryRaw},
	{ID: "main_bearing_temperature", Label: "Main Bearing Temp", Category: CategoryRaw},
	{ID: "rotor_speed", Label: "Rotor Speed", Category: CategoryRaw},
	{ID: "temperature_reading", Label: "Ambient Temp", Category: CategoryRaw},
	{ID: "anemometer_reading", Label: "Wind Speed", Category: CategoryRaw},

	// Physics-informed features.
	{ID: "power_efficiency", Label: "Power Efficiency", Category: CategoryPhysics},
	{ID: "rotor_response", Label: "Rotor Response", Category: CategoryPhysics},
	{ID: "temperature_anomaly", Label: "Temp Anomaly", Category: CategoryPhysics},
	{ID: "main_bearing_consecutive_high", Label: "MBT Consecutive High", Category: CategoryPhysics},
	{ID: "mbt_low_10d", Label: "MBT Low 10d", Category: CategoryPhysics},
	{ID: "rotor_low_count_10d", Label: "Rotor Low 10d", Category: CategoryPhysics},
	{ID: "rotor_low_count_20d", Label: "Rotor Low 20d", Category: CategoryPhysics},
	{ID: "rotor_zero", Label: "Rotor Zero Events", Category: CategoryPhysics},
	{ID: "rotor_and_mbt_low_10d", Label: "Rotor & MBT Low", Category: CategoryPhysics},

	// Statistical features.
	{ID: "active_power_moment", Label: "Power Moment", Category: CategoryStatistical},
	{ID: "main_bearing_temperature_moment", Label: "MBT Moment", Category: CategoryStatistical},
	{ID: "rotor_speed_moment", Label: "Rotor Moment", Category: CategoryStatistical},
	{ID: "active_power_z_score", Label: "Power Z-Score", Category: CategoryStatistical},
	{ID: "main_bearing_temperature_z_score", Label: "MBT Z-Score", Category: CategoryStatistical},
	{ID: "rotor_speed_z_score", Label: "Rotor Z-Score", Category: CategoryStatistical},
	{ID: "active_power_volatility_10d", Label: "Power Volatility", Category: CategoryStatistical},
	{ID: "main_bearing_temperature_volatility_10d", Label: "MBT Volatility", Category: CategoryStatistical},
	{ID: "rotor_speed_volatility_10d", Label: "Rotor Volatility", Category: CategoryStatistical},
	{ID: "active_power_deriv", Label: "Power Derivative", Category: CategoryStatistical},
	{ID: "main_bearing_temperature_deriv", Label: "MBT Derivative", Category: CategoryStatistical},
	{ID: "rotor_speed_deriv", Label: "Rotor Derivative", Category: CategoryStatistical},

	// Anomaly / interaction features.
	{ID: "main_bearing_below_ambient_flag", Label: "MBT Below Ambient", Category: CategoryAnomaly},
	{ID: "volatility_flag", Label: "High Volatility Flag", Category: CategoryAnomaly},
	{ID: "is_constant", Label: "Constant Reading", Category: CategoryAnomaly},

	// Outcomes.
	{ID: "is_approaching_outage", Label: "Approaching Outage", Category: CategoryOutcome},
	{ID: "is_within_outage", Label: "Within Outage", Category: CategoryOutcome},
	{ID: "failure_risk", Label: "Failure Risk", Category: CategoryOutcome},
	{ID: "maintenance_required", Label: "Maintenance Required", Category: CategoryOutcome},
}

func link(source, target string, weight float64) BaseEdge {
	return BaseEdge{Source: source, Target: target, Weight: weight}
}

// defaultEdges encodes the physics relationships between features.
var defaultEdges = []BaseEdge{
	link("active_power", "power_efficiency", 0.9),
	link("anemometer_reading", "power_efficiency", 0.9),
	link("rotor_speed", "rotor_response", 0.9),
	link("anemometer_reading", "rotor_response", 0.8),
	link("main_bearing_temperature", "temperature_anomaly", 0.9),
	link("temperature_reading", "temperature_anomaly", 0.8),
	link("main_bearing_temperature", "main_bearing_consecutive_high", 0.9),
	link("main_bearing_temperature", "mbt_low_10d", 0.8),
	link("rotor_speed", "rotor_low_count_10d", 0.9),
	link("rotor_speed", "rotor_low_count_20d", 0.9),
	link("rotor_speed", "rotor_zero", 0.9),
	link("rotor_speed", "rotor_and_mbt_low_10d", 0.7),
	link("main_bearing_temperature", "rotor_and_mbt_low_10d", 0.7),
	link("active_power", "active_power_moment", 0.9),
	link("active_power", "active_power_z_score", 0.8),
	link("active_power", "active_power_volatility_10d", 0.8),
	link("active_power", "active_power_deriv", 0.9),
	link("main_bearing_temperature", "main_bearing_temperature_moment", 0.9),
	link("main_bearing_temperature", "main_bearing_temperature_z_score", 0.8),
	link("main_bearing_temperature", "main_bearing_temperature_volatility_10d", 0.8),
	link("main_bearing_temperature", "main_bearing_temperature_deriv", 0.9),
	link("rotor_speed", "rotor_speed_moment", 0.9),
	link("rotor_speed", "rotor_speed_z_score", 0.8),
	link("rotor_speed", "rotor_speed_volatility_10d", 0.8),
	link("rotor_speed", "rotor_speed_deriv", 0.9),
	link("temperature_anomaly", "main_bearing_below_ambient_flag", 0.8),
	link("rotor_zero", "is_constant", 0.7),
	link("active_power_volatility_10d", "volatility_flag", 0.8),
	link("main_bearing_temperature_volatility_10d", "volatility_flag", 0.8),
	link("rotor_speed_volatility_10d", "volatility_flag", 0.8),
	link("power_efficiency", "failure_risk", 0.8),
	link("temperature_anomaly", "failure_risk", 0.9),
	link("main_bearing_consecutive_high", "failure_risk", 0.9),
	link("main_bearing_temperature_z_score", "failure_risk", 0.8),
	link("rotor_speed_z_score", "failure_risk", 0.7),
	link("volatility_flag", "failure_risk", 0.7),
	link("rotor_zero", "is_within_outage", 0.9),
	link("is_constant", "is_within_outage", 0.8),
	link("mbt_low_10d", "is_approaching_outage", 0.7),
	link("rotor_low_count_10d", "is_approaching_outage", 0.8),
	link("rotor_and_mbt_low_10d", "is_approaching_outage", 0.9),
	link("main_bearing_below_ambient_flag", "maintenance_required", 0.8),
	link("main_bearing_consecutive_high", "maintenance_required", 0.9),
	link("active_power_deriv", "is_approaching_outage", 0.6),
	link("main_bearing_temperature_deriv", "failure_risk", 0.7),

	// Cross-connections between derived features.
	link("power_efficiency", "rotor_response", 0.6),
	link("temperature_anomaly", "main_bearing_consecutive_high", 0.7),
	link("active_power_z_score", "volatility_flag", 0.6),
	link("rotor_speed_moment", "rotor_low_count_10d", 0.5),
}
