package scene

// Phong adds a specular highlight on top of the implicit diffuse term
type Phong struct {
	SpecularCoeff float64 // Weight of the specular contribution
	Shininess     int     // Specular exponent; higher is tighter
}

// NewDefaultPhong returns the showcase highlight settings
func NewDefaultPhong() *Phong {
	return &Phong{SpecularCoeff: 0.5, Shininess: 10}
}

// Mirror adds a reflected contribution weighted by Coeff in [0, 1]
type Mirror struct {
	Coeff float64
}

// Transparency adds a refracted contribution. RefractiveIndex must be
// positive; Alpha weights the transmitted color.
type Transparency struct {
	RefractiveIndex float64
	Alpha           float64
}

// NewTransparency returns a fully transmitting medium of the given index
func NewTransparency(refractiveIndex float64) *Transparency {
	return &Transparency{RefractiveIndex: refractiveIndex, Alpha: 1.0}
}

// Effects bundles the optional optical behaviors of an object. Any subset
// may be combined; nil members are inactive.
type Effects struct {
	Phong        *Phong
	Mirror       *Mirror
	Transparency *Transparency
}
