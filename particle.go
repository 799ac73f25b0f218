package spevent

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// All particle equations take and return SI units.

// Avogadro constant (1/mol).
const avogadro = 6.02214076e23

// AtomsPerParticle returns the number of atoms in a particle:
// N = m (kg) * N_A (/mol) / M (kg/mol).
func AtomsPerParticle(mass, molarMass float64) float64 {
	return mass * avogadro / molarMass
}

// CellConcentration returns the intracellular concentration (mol/L) of
// a mass (kg) inside a spherical cell of the given diameter (m):
// c = m / (4/3 * pi * (d/2)^3 * 1000 (L/m^3) * M (kg/mol)).
func CellConcentration(mass, diameter, molarMass float64) float64 {
	volume := 4.0 / 3.0 * math.Pi * math.Pow(diameter/2.0, 3.0)
	return mass / (volume * 1000.0 * molarMass)
}

// NebulisationEfficiencyFromConcentration returns the transport
// efficiency implied by a reference material of known concentration:
// eta = (m (kg) * N) / (c (kg/L) * V (L/s) * t (s)).
func NebulisationEfficiencyFromConcentration(count int, concentration, mass, flowRate, time float64) float64 {
	return (mass * float64(count)) / (flowRate * time * concentration)
}

// NebulisationEfficiencyFromMass returns the transport efficiency
// implied by reference particle signals of known mass:
// eta = (m (kg) * s (L/kg)) / (mean(I) * f * t (s) * V (L/s)),
// where s is the ionic response factor and f the analyte mass fraction.
func NebulisationEfficiencyFromMass(signals []float64, dwell, mass, flowRate, responseFactor, massFraction float64) float64 {
	mean := stat.Mean(signals, nil)
	return (mass * responseFactor) / (mean * massFraction * dwell * flowRate)
}

// ParticleMass converts an integrated event signal to particle mass:
// m (kg) = I * (eta * t (s) * V (L/s)) / (s (L/kg) * f).
func ParticleMass(signal, dwell, efficiency, flowRate, responseFactor, massFraction float64) float64 {
	return signal * (dwell * flowRate * efficiency / (responseFactor * massFraction))
}

// ParticleMasses applies ParticleMass to each signal.
func ParticleMasses(signals []float64, dwell, efficiency, flowRate, responseFactor, massFraction float64) []float64 {
	factor := dwell * flowRate * efficiency / (responseFactor * massFraction)
	masses := make([]float64, len(signals))
	for i, s := range signals {
		masses[i] = s * factor
	}
	return masses
}

// ParticleNumberConcentration returns particles per litre:
// PNC (/L) = N / (eta * V (L/s) * T (s)).
func ParticleNumberConcentration(count int, efficiency, flowRate, time float64) float64 {
	return float64(count) / (efficiency * flowRate * time)
}

// ParticleSize returns the spherical-equivalent diameter of a particle:
// d (m) = cbrt(6 * m (kg) / (pi * rho (kg/m3))).
func ParticleSize(mass, density float64) float64 {
	return math.Cbrt(6.0 / (math.Pi * density) * mass)
}

// ParticleSizes applies ParticleSize to each mass.
func ParticleSizes(masses []float64, density float64) []float64 {
	sizes := make([]float64, len(masses))
	for i, m := range masses {
		sizes[i] = ParticleSize(m, density)
	}
	return sizes
}

// ParticleTotalConcentration returns the total material concentration:
// C (kg/L) = sum(m (kg)) / (eta * V (L/s) * T (s)).
func ParticleTotalConcentration(masses []float64, efficiency, flowRate, time float64) float64 {
	return floats.Sum(masses) / (efficiency * flowRate * time)
}

// ReferenceParticleMass returns the mass of a spherical particle:
// m (kg) = 4/3 * pi * (d (m) / 2)^3 * rho (kg/m3).
func ReferenceParticleMass(density, diameter float64) float64 {
	return 4.0 / 3.0 * math.Pi * math.Pow(diameter/2.0, 3.0) * density
}
