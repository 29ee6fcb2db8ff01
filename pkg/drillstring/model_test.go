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

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestPartCrossSectionArea(t *testing.T) {

	p := DrillStringComponentPart{InnerDiameter: 1.0, OuterDiameter: 2.0}

	want := math.Pi * 0.25 * (4.0 - 1.0)
	require.InDelta(t, want, p.EffectiveCrossSectionArea(), 1e-12)
	require.InDelta(t, 2.3561944901923448, p.EffectiveCrossSectionArea(), 1e-9)
}

func TestPartTorsionalInertia(t *testing.T) {

	p := DrillStringComponentPart{InnerDiameter: 1.0, OuterDiameter: 2.0}

	area := math.Pi * 0.25 * (4.0 - 1.0)
	want := 0.5 * 0.25 * (4.0 + 1.0) * area
	require.InDelta(t, want, p.EffectiveFirstCrossSectionTorsionalInertia(), 1e-12)
}

func TestPartMaterialDefaults(t *testing.T) {

	p := DrillStringComponentPart{}

	require.Equal(t, 220e9, p.EffectiveYoungModulus())
	require.Equal(t, 0.28, p.EffectivePoissonRatio())
	require.Equal(t, 7800.0, p.EffectiveAverageDensity())
	require.Equal(t, 510.0, p.EffectiveHeatCapacity())
	require.Equal(t, 54.0, p.EffectiveThermalConductivity())
}

func TestPartMassDerivation(t *testing.T) {

	p := DrillStringComponentPart{
		TotalLength:   10.0,
		InnerDiameter: 1.0,
		OuterDiameter: 2.0,
	}

	area := math.Pi * 0.25 * (4.0 - 1.0)
	require.InDelta(t, 7800.0*10.0*area, p.EffectiveMass(), 1e-6)

	/* EXPLICIT DENSITY FEEDS THE DERIVED MASS */
	p.AverageDensity = f64(2700.0)
	require.InDelta(t, 2700.0*10.0*area, p.EffectiveMass(), 1e-6)

	/* EXPLICIT MASS WINS OVER DERIVATION */
	p.Mass = f64(42.0)
	require.Equal(t, 42.0, p.EffectiveMass())
}

/* A STORED ZERO IS A READING, NOT AN UNSET VALUE */
func TestPartExplicitZeroRespected(t *testing.T) {

	p := DrillStringComponentPart{
		TotalLength:   10.0,
		InnerDiameter: 1.0,
		OuterDiameter: 2.0,
		Mass:          f64(0.0),
		YoungModulus:  f64(0.0),
	}

	require.Equal(t, 0.0, p.EffectiveMass())
	require.Equal(t, 0.0, p.EffectiveYoungModulus())
}

/* MASS DERIVATION USES THE COMPUTED AREA, NOT THE STORED ONE */
func TestPartMassIgnoresStoredArea(t *testing.T) {

	p := DrillStringComponentPart{
		TotalLength:      10.0,
		InnerDiameter:    1.0,
		OuterDiameter:    2.0,
		CrossSectionArea: f64(999.0),
	}

	area := math.Pi * 0.25 * (4.0 - 1.0)
	require.Equal(t, 999.0, p.EffectiveCrossSectionArea())
	require.InDelta(t, 7800.0*10.0*area, p.EffectiveMass(), 1e-6)
}

func TestComponentLength(t *testing.T) {

	com := DrillStringComponent{}
	require.Equal(t, 0.0, com.Length())

	com.PartList = []DrillStringComponentPart{
		{TotalLength: 9.6},
		{TotalLength: 0.4},
		{TotalLength: 12.0},
	}
	require.InDelta(t, 22.0, com.Length(), 1e-12)
}

func TestComponentDisplayName(t *testing.T) {

	com := DrillStringComponent{}
	require.Equal(t, "Component", com.DisplayName())

	com.Name = "8in Drill Collar"
	require.Equal(t, "8in Drill Collar", com.DisplayName())
}

func TestComponentTypeValid(t *testing.T) {

	for _, ct := range []ComponentType{
		TypeDrillPipe, TypeDrillCollar, TypeHeavyWeightDrillPipe, TypeJar,
		TypeMwd, TypeStabilizer, TypeSteerableRotaryTool, TypeBit,
	} {
		require.True(t, ct.Valid(), string(ct))
	}

	require.False(t, ComponentType("").Valid())
	require.False(t, ComponentType("Casing").Valid())
}

/* UNSET ATTRIBUTES MUST SURVIVE A ROUND TRIP AS null, NOT COME
BACK AS ZEROES */
func TestPartJSONRoundTrip(t *testing.T) {

	in := DrillStringComponentPart{
		Name:          "pipe body",
		TotalLength:   9.6,
		InnerDiameter: 0.1086,
		OuterDiameter: 0.127,
		YieldStrength: f64(758e6),
		Mass:          f64(0.0),
	}

	buf, err := json.Marshal(&in)
	require.NoError(t, err)

	out := DrillStringComponentPart{}
	require.NoError(t, json.Unmarshal(buf, &out))

	require.Nil(t, out.YoungModulus)
	require.Nil(t, out.AverageDensity)
	require.Nil(t, out.CrossSectionArea)
	require.NotNil(t, out.YieldStrength)
	require.Equal(t, 758e6, *out.YieldStrength)
	require.NotNil(t, out.Mass)
	require.Equal(t, 0.0, *out.Mass)
	require.Equal(t, in.TotalLength, out.TotalLength)
}
