// Package vocabulary provides the W3C and OBO vocabulary IRIs the engine
// consumes, plus a registry that decides which predicates are annotation
// properties for the structural/annotation graph split.
package vocabulary

import "github.com/TTa77/PheKnowLator/rdf"

// RDF syntax IRIs.
const (
	// RdfType declares the type of a resource.
	RdfType rdf.IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
)

// RDF Schema IRIs.
const (
	// RdfsSubClassOf is the is-subclass-of relation followed by the
	// ancestor resolver.
	RdfsSubClassOf rdf.IRI = "http://www.w3.org/2000/01/rdf-schema#subClassOf"

	// RdfsLabel provides a human-readable name for a resource.
	RdfsLabel rdf.IRI = "http://www.w3.org/2000/01/rdf-schema#label"

	// RdfsComment provides a human-readable description.
	RdfsComment rdf.IRI = "http://www.w3.org/2000/01/rdf-schema#comment"

	// RdfsSeeAlso indicates a resource providing additional information.
	RdfsSeeAlso rdf.IRI = "http://www.w3.org/2000/01/rdf-schema#seeAlso"

	// RdfsIsDefinedBy indicates the resource defining the subject.
	RdfsIsDefinedBy rdf.IRI = "http://www.w3.org/2000/01/rdf-schema#isDefinedBy"
)

// OWL (Web Ontology Language) IRIs.
const (
	// OwlClass declares an ontology class.
	OwlClass rdf.IRI = "http://www.w3.org/2002/07/owl#Class"

	// OwlNamedIndividual declares an instance-level individual.
	OwlNamedIndividual rdf.IRI = "http://www.w3.org/2002/07/owl#NamedIndividual"

	// OwlObjectProperty declares a relation between individuals.
	OwlObjectProperty rdf.IRI = "http://www.w3.org/2002/07/owl#ObjectProperty"

	// OwlAnnotationProperty declares a metadata-only property.
	OwlAnnotationProperty rdf.IRI = "http://www.w3.org/2002/07/owl#AnnotationProperty"

	// OwlDatatypeProperty declares a relation from individuals to literals.
	OwlDatatypeProperty rdf.IRI = "http://www.w3.org/2002/07/owl#DatatypeProperty"

	// OwlDeprecated marks obsoleted classes and properties.
	OwlDeprecated rdf.IRI = "http://www.w3.org/2002/07/owl#deprecated"

	// OwlSameAs asserts identity between two resources.
	OwlSameAs rdf.IRI = "http://www.w3.org/2002/07/owl#sameAs"

	// OwlAxiom is the reified axiom class used by annotation assertions.
	OwlAxiom rdf.IRI = "http://www.w3.org/2002/07/owl#Axiom"

	// OwlAnnotatedSource, OwlAnnotatedProperty, and OwlAnnotatedTarget
	// carry the reified positions of an annotated axiom.
	OwlAnnotatedSource   rdf.IRI = "http://www.w3.org/2002/07/owl#annotatedSource"
	OwlAnnotatedProperty rdf.IRI = "http://www.w3.org/2002/07/owl#annotatedProperty"
	OwlAnnotatedTarget   rdf.IRI = "http://www.w3.org/2002/07/owl#annotatedTarget"
)

// oboInOwl IRIs used by OBO Foundry ontologies.
const (
	// OboHasOBONamespace tags a class with its source OBO namespace.
	OboHasOBONamespace rdf.IRI = "http://www.geneontology.org/formats/oboInOwl#hasOBONamespace"

	// OboHasExactSynonym links a class to an exact synonym literal.
	OboHasExactSynonym rdf.IRI = "http://www.geneontology.org/formats/oboInOwl#hasExactSynonym"

	// OboHasRelatedSynonym links a class to a related synonym literal.
	OboHasRelatedSynonym rdf.IRI = "http://www.geneontology.org/formats/oboInOwl#hasRelatedSynonym"

	// OboHasNarrowSynonym links a class to a narrower synonym literal.
	OboHasNarrowSynonym rdf.IRI = "http://www.geneontology.org/formats/oboInOwl#hasNarrowSynonym"

	// OboHasBroadSynonym links a class to a broader synonym literal.
	OboHasBroadSynonym rdf.IRI = "http://www.geneontology.org/formats/oboInOwl#hasBroadSynonym"

	// OboHasDbXref links a class to a cross-referenced database identifier.
	OboHasDbXref rdf.IRI = "http://www.geneontology.org/formats/oboInOwl#hasDbXref"

	// OboID carries the compact OBO identifier of a class.
	OboID rdf.IRI = "http://www.geneontology.org/formats/oboInOwl#id"
)

// XSD datatype IRIs.
const (
	XsdString  rdf.IRI = "http://www.w3.org/2001/XMLSchema#string"
	XsdBoolean rdf.IRI = "http://www.w3.org/2001/XMLSchema#boolean"
	XsdInteger rdf.IRI = "http://www.w3.org/2001/XMLSchema#integer"
	XsdFloat   rdf.IRI = "http://www.w3.org/2001/XMLSchema#float"
)
