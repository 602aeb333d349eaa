package easing

// Entry pairs a curve with the name it is looked up by.
type Entry struct {
	Name string
	Func Func
}

var catalog = []Entry{
	{"LinearIn", LinearIn},
	{"LinearOut", LinearOut},
	{"LinearInOut", LinearInOut},
	{"QuadraticIn", QuadraticIn},
	{"QuadraticOut", QuadraticOut},
	{"QuadraticInOut", QuadraticInOut},
	{"CubicIn", CubicIn},
	{"CubicOut", CubicOut},
	{"CubicInOut", CubicInOut},
	{"QuarticIn", QuarticIn},
	{"QuarticOut", QuarticOut},
	{"QuarticInOut", QuarticInOut},
	{"QuinticIn", QuinticIn},
	{"QuinticOut", QuinticOut},
	{"QuinticInOut", QuinticInOut},
	{"SineIn", SineIn},
	{"SineOut", SineOut},
	{"SineInOut", SineInOut},
	{"ExponentialIn", ExponentialIn},
	{"ExponentialOut", ExponentialOut},
	{"ExponentialInOut", ExponentialInOut},
	{"CircularIn", CircularIn},
	{"CircularOut", CircularOut},
	{"CircularInOut", CircularInOut},
	{"ElasticIn", ElasticIn},
	{"ElasticOut", ElasticOut},
	{"ElasticInOut", ElasticInOut},
	{"BackIn", BackIn},
	{"BackOut", BackOut},
	{"BackInOut", BackInOut},
	{"BounceIn", BounceIn},
	{"BounceOut", BounceOut},
	{"BounceInOut", BounceInOut},
}

var byName = func() map[string]Func {
	m := make(map[string]Func, len(catalog)+1)
	for _, e := range catalog {
		m[e.Name] = e.Func
	}
	m["Linear"] = Linear
	return m
}()

// All returns every curve in catalogue order (family by family, In/Out/InOut).
func All() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the catalogue names in order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.Name
	}
	return names
}

// ByName looks up a curve. "Linear" resolves to the identity as well.
func ByName(name string) (Func, bool) {
	f, ok := byName[name]
	return f, ok
}
