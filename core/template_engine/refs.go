package template_engine

type proxyquireTemplates struct {
	Ref  TemplateRef
	SPEC TemplateRef
}

type initTemplates struct {
	Ref    TemplateRef
	CONFIG TemplateRef
}

// TEMPLATES mirrors the layout of the embedded templates directory.
var TEMPLATES = struct {
	PROXYQUIRE proxyquireTemplates
	INIT       initTemplates
}{
	PROXYQUIRE: proxyquireTemplates{
		Ref:  TemplateRef{Path: "proxyquire", IsDir: true},
		SPEC: TemplateRef{Path: "proxyquire/spec.js.tmpl"},
	},
	INIT: initTemplates{
		Ref:    TemplateRef{Path: "init", IsDir: true},
		CONFIG: TemplateRef{Path: "init/stubgen.yaml.tmpl"},
	},
}
