/* Drill String Server (DSS) is a component of the Datacan Data2Desk (D2D) Platform.
License:

	[PROPER LEGALESE HERE...]

	INTERIM LICENSE DESCRIPTION:
	In spirit, this license:
	1. Allows <Third Party> to use, modify, and / or distributre this software in perpetuity so long as <Third Party> understands:
		a. The software is porvided as is without guarantee of additional support from DataCan in any form.
		b. The software is porvided as is without guarantee of exclusivity.

	2. Prohibits <Third Party> from taking any action which might interfere with DataCan's right to use, modify and / or distributre this software in perpetuity.
*/

package drillstring

import "math"

/* MATERIAL DEFAULTS (STEEL), SI UNITS; APPLIED WHEN A DEFAULTABLE
ATTRIBUTE IS NOT SET ON THE PART */
const (
	DefaultYoungModulus        = 220e9  // Pa
	DefaultPoissonRatio        = 0.28   //
	DefaultAverageDensity      = 7800.0 // kg/m3
	DefaultHeatCapacity        = 510.0  // J/(kg.K)
	DefaultThermalConductivity = 54.0   // W/(m.K)
)

/* THICK-WALL ANNULUS FORMULAS; TOTAL FUNCTIONS, NO VALIDATION -
CALLERS OWN THE Do >= Di >= 0 PRECONDITION */
func calcCrossSectionArea(di, do float64) float64 {
	return math.Pi * 0.25 * (do*do - di*di)
}
func calcCrossSectionTorsionalInertia(di, do float64) float64 {
	return 0.5 * 0.25 * (do*do + di*di) * calcCrossSectionArea(di, do)
}

/*
	DRILL STRING COMPONENT PART

A UNIFORM PIPE / TOOL SEGMENT. OPTIONAL ATTRIBUTES ARE POINTERS:
nil MEANS "NOT SET" AND ROUND-TRIPS AS null; THE Effective* ACCESSORS
RESOLVE THE DEFAULTABLE ONES AGAINST THE STEEL TABLE ABOVE WITHOUT
EVER TOUCHING THE STORED VALUE. AN EXPLICITLY SET ZERO IS A READING.

THE ECCENTRICITY IS EXPRESSED IN POLAR COORDINATES,
I.E. THE DISTANCE FROM THE MASS CENTER + AN ANGLE.
*/
type DrillStringComponentPart struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	/* GEOMETRIC VALUES */
	TotalLength               float64  `json:"total_length"`
	OuterDiameter             float64  `json:"outer_diameter"`
	InnerDiameter             float64  `json:"inner_diameter"`
	OuterDiameterState2       *float64 `json:"outer_diameter_state_2"`
	OuterDiameterStateBoolean *bool    `json:"outer_diameter_state_boolean"`

	/* FRICTION VALUES */
	FrictionFactorRotation          *float64 `json:"friction_factor_rotation"`
	FrictionFactorAxialDisplacement *float64 `json:"friction_factor_axial_displacement"`

	PressureLossConstantLowFlowRate  *float64 `json:"pressure_loss_constant_low_flow_rate"`
	PressureLossConstantHighFlowRate *float64 `json:"pressure_loss_constant_high_flow_rate"`

	/* IMBALANCE INFORMATION */
	EccentricityDistance *float64 `json:"eccentricity_distance"`
	EccentricityAngle    *float64 `json:"eccentricity_angle"`

	/* FLOW RATE RELATED PROPERTIES */
	TotalFlowAreaCondition1       *float64 `json:"total_flow_area_condition_1"`
	TotalFlowAreaCondition2       *float64 `json:"total_flow_area_condition_2"`
	TotalFlowAreaConditionBoolean *bool    `json:"total_flow_area_condition_boolean"`
	FlowrateThresholdValue        *float64 `json:"flowrate_threshold_value"`

	/* COATINGS */
	InnerCoatingThickness           *float64 `json:"inner_coating_thickness"`
	InnerCoatingDensity             *float64 `json:"inner_coating_density"`
	InnerCoatingThermalConductivity *float64 `json:"inner_coating_thermal_conductivity"`
	InnerCoatingHeatCapacity        *float64 `json:"inner_coating_heat_capacity"`
	OuterCoatingThickness           *float64 `json:"outer_coating_thickness"`
	OuterCoatingDensity             *float64 `json:"outer_coating_density"`
	OuterCoatingThermalConductivity *float64 `json:"outer_coating_thermal_conductivity"`
	OuterCoatingHeatCapacity        *float64 `json:"outer_coating_heat_capacity"`

	/* STRENGTH */
	YieldStrength                      *float64 `json:"yield_strength"`
	UltimateStrength                   *float64 `json:"ultimate_strength"`
	SecondCrossSectionTorsionalInertia *float64 `json:"second_cross_section_torsional_inertia"`

	/* DEFAULTABLE SCALARS (DEFAULT TO STEEL WHEN nil) */
	FirstCrossSectionTorsionalInertia *float64 `json:"first_cross_section_torsional_inertia"`
	CrossSectionArea                  *float64 `json:"cross_section_area"`
	YoungModulus                      *float64 `json:"young_modulus"`
	PoissonRatio                      *float64 `json:"poisson_ratio"`
	AverageDensity                    *float64 `json:"average_density"`
	Mass                              *float64 `json:"mass"`
	HeatCapacity                      *float64 `json:"heat_capacity"`
	ThermalConductivity               *float64 `json:"thermal_conductivity"`
}

func (p *DrillStringComponentPart) EffectiveFirstCrossSectionTorsionalInertia() float64 {
	if p.FirstCrossSectionTorsionalInertia == nil {
		return calcCrossSectionTorsionalInertia(p.InnerDiameter, p.OuterDiameter)
	}
	return *p.FirstCrossSectionTorsionalInertia
}

func (p *DrillStringComponentPart) EffectiveCrossSectionArea() float64 {
	if p.CrossSectionArea == nil {
		return calcCrossSectionArea(p.InnerDiameter, p.OuterDiameter)
	}
	return *p.CrossSectionArea
}

func (p *DrillStringComponentPart) EffectiveYoungModulus() float64 {
	if p.YoungModulus == nil {
		return DefaultYoungModulus
	}
	return *p.YoungModulus
}

func (p *DrillStringComponentPart) EffectivePoissonRatio() float64 {
	if p.PoissonRatio == nil {
		return DefaultPoissonRatio
	}
	return *p.PoissonRatio
}

/* IF NO DENSITY IS PROVIDED, DEFAULT TO STEEL */
func (p *DrillStringComponentPart) EffectiveAverageDensity() float64 {
	if p.AverageDensity == nil {
		return DefaultAverageDensity
	}
	return *p.AverageDensity
}

/* IF NO MASS IS PROVIDED, DERIVE IT FROM DENSITY AND GEOMETRY */
func (p *DrillStringComponentPart) EffectiveMass() float64 {
	if p.Mass == nil {
		return p.EffectiveAverageDensity() * p.TotalLength * calcCrossSectionArea(p.InnerDiameter, p.OuterDiameter)
	}
	return *p.Mass
}

func (p *DrillStringComponentPart) EffectiveHeatCapacity() float64 {
	if p.HeatCapacity == nil {
		return DefaultHeatCapacity
	}
	return *p.HeatCapacity
}

func (p *DrillStringComponentPart) EffectiveThermalConductivity() float64 {
	if p.ThermalConductivity == nil {
		return DefaultThermalConductivity
	}
	return *p.ThermalConductivity
}
