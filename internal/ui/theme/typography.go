package theme

// Role picks one of the loaded faces.
type Role int

const (
	RoleLight Role = iota
	RoleRegular
	RoleBold
	RoleDisplay
	numRoles
)

// Face is a font file and the pixel size it is rasterised at.
type Face struct {
	File string
	Size int32
}

// Faces lists the fonts the board needs, indexed by Role.
var Faces = [numRoles]Face{
	RoleLight:   {File: "Roboto-Light.ttf", Size: 35},
	RoleRegular: {File: "Roboto-Regular.ttf", Size: 50},
	RoleBold:    {File: "Roboto-Bold.ttf", Size: 70},
	RoleDisplay: {File: "Seven-Segment.ttf", Size: 100},
}

func Roles() []Role {
	return []Role{RoleLight, RoleRegular, RoleBold, RoleDisplay}
}

func (r Role) Size() int32 {
	if r < 0 || r >= numRoles {
		return Faces[RoleRegular].Size
	}
	return Faces[r].Size
}
