package container

// Catalog is the explicit list of bean definitions a program contributes.
// Modules add their definitions to it at composition time; the composition
// root then hands it to a Factory. It is not safe for concurrent use.
type Catalog struct {
	BaseProvider
	defs []BeanDefinition
}

// NewCatalog returns a catalog holding defs.
func NewCatalog(defs ...BeanDefinition) *Catalog {
	return (&Catalog{}).Add(defs...)
}

// Add appends defs and returns the catalog for chaining.
func (c *Catalog) Add(defs ...BeanDefinition) *Catalog {
	c.defs = append(c.defs, defs...)
	return c
}

// Definitions returns a copy of the declared definitions in order.
func (c *Catalog) Definitions() []BeanDefinition {
	return append([]BeanDefinition(nil), c.defs...)
}

// Keys returns the declared keys in order. Duplicates are kept.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.defs))
	for _, d := range c.defs {
		keys = append(keys, d.key)
	}
	return keys
}

// Register queues every definition on f without initializing it, leaving
// room to register more beans before Init. It implements ServiceProvider.
func (c *Catalog) Register(f *Factory) error {
	f.RegisterAll(c.defs...)
	return nil
}

// Setup registers every definition and then triggers Init.
func (c *Catalog) Setup(f *Factory) {
	f.RegisterAll(c.defs...)
	f.Init()
}
