// Package i18n provides the message catalog for user-facing text.
// Spanish is the product language; English is available as an alternative.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is used when no locale is configured or the configured one is unsupported.
const DefaultLocale = "es"

// Message keys. Keys are the English text; the Spanish catalog translates them.
const (
	// Document
	MsgDocumentTitle   = "My CV"
	MsgNamePlaceholder = "Full Name"
	MsgSummary         = "Professional Summary"
	MsgExperience      = "Work Experience"
	MsgEducation       = "Education"
	MsgSkills          = "Skills"
	MsgPresent         = "Present"
	MsgNoExperience    = "No experience recorded."
	MsgNoEducation     = "No education recorded."
	MsgNoSkills        = "No skills recorded."
	MsgYear            = "Year: %s"
	MsgLevel           = "Level: %s"

	// Field rules
	MsgFullNameRequired    = "Full name is required"
	MsgEmailRequired       = "Email is required"
	MsgPhoneRequired       = "Phone is required"
	MsgLocationRequired    = "Location is required"
	MsgCompanyRequired     = "Company is required"
	MsgPositionRequired    = "Position is required"
	MsgInstitutionRequired = "Institution is required"
	MsgDegreeRequired      = "Degree is required"
	MsgFieldRequired       = "Field of study is required"
	MsgYearRequired        = "Graduation year is required"
	MsgSkillNameRequired   = "Skill name is required"
	MsgLettersOnly         = "Only letters and spaces are allowed"
	MsgInvalidEmail        = "Invalid email"
	MsgPhoneChars          = "Only digits and + are allowed"
	MsgNumberOnly          = "Must be a number"
	MsgMaxLength           = "At most %d characters"
	MsgMaxValue            = "Cannot be greater than %d"
	MsgInvalidLevel        = "Level must be one of: %s"
	MsgIDRequired          = "An id is required"
	MsgDuplicateID         = "Duplicate id %q"

	// Date rules
	MsgStartRequired  = "The start date is required."
	MsgStartFuture    = "The start date cannot be in the future."
	MsgEndFuture      = "The end date cannot be in the future."
	MsgEndBeforeStart = "The end date cannot be earlier than the start date."
	MsgInvalidDate    = "Invalid date %q: use \"Month Year\"."

	// Dialogs
	MsgTitleSuccess         = "Success"
	MsgTitleError           = "Error"
	MsgTitleConfirm         = "Confirm"
	MsgTitlePermission      = "Permission Denied"
	MsgTitlePDFGenerated    = "PDF Generated"
	MsgPersonalSaved        = "Personal information saved successfully"
	MsgExperienceAdded      = "Experience added successfully"
	MsgEducationAdded       = "Education added successfully"
	MsgSkillAdded           = "Skill added successfully"
	MsgPhotoSaved           = "Photo saved successfully"
	MsgConfirmDelExperience = "Are you sure you want to delete this experience?"
	MsgConfirmDelEducation  = "Are you sure you want to delete this education entry?"
	MsgConfirmDelSkill      = "Are you sure you want to delete this skill?"
	MsgConfirmDelPhoto      = "Remove profile photo?"
	MsgPhotoPermission      = "We need access to your photos."
	MsgPhotoReadFailed      = "Could not read the selected photo."
	MsgPDFReady             = "You can now view or share it."
	MsgPDFFailed            = "Could not generate the PDF."
	MsgGenerateFirst        = "Generate the PDF first"
	MsgViewFailed           = "Could not show the PDF."
	MsgShareFailed          = "Could not share the PDF."
	MsgSaveFailed           = "Could not save the entry."

	// Wizard labels
	MsgLabelFullName    = "Full Name *"
	MsgLabelEmail       = "Email *"
	MsgLabelPhone       = "Phone *"
	MsgLabelLocation    = "Location *"
	MsgLabelSummary     = MsgSummary
	MsgLabelPhoto       = "Profile photo path (empty to skip)"
	MsgLabelCompany     = "Company *"
	MsgLabelPosition    = "Position *"
	MsgLabelStartDate   = "Start Date * (Month Year)"
	MsgLabelEndDate     = "End Date (Month Year, empty if current)"
	MsgLabelDescription = "Description"
	MsgLabelInstitution = "Institution *"
	MsgLabelDegree      = "Degree *"
	MsgLabelField       = "Field of Study *"
	MsgLabelYear        = "Graduation Year *"
	MsgLabelSkillName   = "Skill Name *"
	MsgLabelSkillLevel  = "Level (%s)"
	MsgAskAddExperience = "Add an experience?"
	MsgAskAddEducation  = "Add an education entry?"
	MsgAskAddSkill      = "Add a skill?"
	MsgAskPhoto         = "Add a profile photo?"
)

var spanish = map[string]string{
	MsgDocumentTitle:   "Mi CV",
	MsgNamePlaceholder: "Nombre Apellido",
	MsgSummary:         "Resumen Profesional",
	MsgExperience:      "Experiencia Laboral",
	MsgEducation:       "Educación",
	MsgSkills:          "Habilidades",
	MsgPresent:         "Actual",
	MsgNoExperience:    "Sin experiencia registrada.",
	MsgNoEducation:     "Sin educación registrada.",
	MsgNoSkills:        "Sin habilidades registradas.",
	MsgYear:            "Año: %s",
	MsgLevel:           "Nivel: %s",

	MsgFullNameRequired:    "Nombre completo es obligatorio",
	MsgEmailRequired:       "Email es obligatorio",
	MsgPhoneRequired:       "Teléfono es obligatorio",
	MsgLocationRequired:    "Ubicación es obligatoria",
	MsgCompanyRequired:     "Empresa es obligatoria",
	MsgPositionRequired:    "Cargo es obligatorio",
	MsgInstitutionRequired: "Institución es obligatoria",
	MsgDegreeRequired:      "Título es obligatorio",
	MsgFieldRequired:       "Área de estudio es obligatoria",
	MsgYearRequired:        "Año de graduación es obligatorio",
	MsgSkillNameRequired:   "El nombre de la habilidad es obligatorio",
	MsgLettersOnly:         "Solo se permiten letras y espacios",
	MsgInvalidEmail:        "Email inválido",
	MsgPhoneChars:          "Solo números y +",
	MsgNumberOnly:          "Debe ser un número",
	MsgMaxLength:           "Máximo %d caracteres",
	MsgMaxValue:            "No puede ser mayor a %d",
	MsgInvalidLevel:        "El nivel debe ser uno de: %s",
	MsgIDRequired:          "El identificador es obligatorio",
	MsgDuplicateID:         "Identificador duplicado %q",

	MsgStartRequired:  "La fecha de inicio es obligatoria.",
	MsgStartFuture:    "La fecha de inicio no puede ser futura.",
	MsgEndFuture:      "La fecha de fin no puede ser futura.",
	MsgEndBeforeStart: "La fecha de fin no puede ser anterior a la fecha de inicio.",
	MsgInvalidDate:    "Fecha inválida %q: use \"Mes Año\".",

	MsgTitleSuccess:         "Éxito",
	MsgTitleError:           "Error",
	MsgTitleConfirm:         "Confirmar",
	MsgTitlePermission:      "Permiso Denegado",
	MsgTitlePDFGenerated:    "PDF Generado",
	MsgPersonalSaved:        "Información personal guardada correctamente",
	MsgExperienceAdded:      "Experiencia agregada correctamente",
	MsgEducationAdded:       "Educación agregada correctamente",
	MsgSkillAdded:           "Habilidad agregada correctamente",
	MsgPhotoSaved:           "Foto guardada correctamente",
	MsgConfirmDelExperience: "¿Estás seguro de eliminar esta experiencia?",
	MsgConfirmDelEducation:  "¿Estás seguro de eliminar esta educación?",
	MsgConfirmDelSkill:      "¿Estás seguro de eliminar esta habilidad?",
	MsgConfirmDelPhoto:      "¿Eliminar foto de perfil?",
	MsgPhotoPermission:      "Necesitamos acceso a tu galería.",
	MsgPhotoReadFailed:      "No se pudo leer la foto seleccionada.",
	MsgPDFReady:             "Ya puedes verlo o compartirlo.",
	MsgPDFFailed:            "No se pudo generar el PDF.",
	MsgGenerateFirst:        "Primero debes generar el PDF",
	MsgViewFailed:           "No se pudo mostrar el PDF.",
	MsgShareFailed:          "No se pudo compartir el PDF.",
	MsgSaveFailed:           "No se pudo guardar el registro.",

	MsgLabelFullName:    "Nombre Completo *",
	MsgLabelEmail:       "Email *",
	MsgLabelPhone:       "Teléfono *",
	MsgLabelLocation:    "Ubicación *",
	MsgLabelPhoto:       "Ruta de la foto de perfil (vacío para omitir)",
	MsgLabelCompany:     "Empresa *",
	MsgLabelPosition:    "Cargo *",
	MsgLabelStartDate:   "Fecha de Inicio * (Mes Año)",
	MsgLabelEndDate:     "Fecha de Fin (Mes Año, vacío si es actual)",
	MsgLabelDescription: "Descripción",
	MsgLabelInstitution: "Institución *",
	MsgLabelDegree:      "Título/Grado *",
	MsgLabelField:       "Área de Estudio *",
	MsgLabelYear:        "Año de Graduación *",
	MsgLabelSkillName:   "Nombre de la Habilidad *",
	MsgLabelSkillLevel:  "Nivel (%s)",
	MsgAskAddExperience: "¿Agregar una experiencia?",
	MsgAskAddEducation:  "¿Agregar una educación?",
	MsgAskAddSkill:      "¿Agregar una habilidad?",
	MsgAskPhoto:         "¿Agregar una foto de perfil?",
}

var supported = []language.Tag{language.Spanish, language.English}

var (
	matcher        = language.NewMatcher(supported)
	defaultCatalog = mustBuildCatalog()
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Spanish))
	for key, text := range spanish {
		if err := b.SetString(language.Spanish, key, text); err != nil {
			panic(fmt.Sprintf("i18n: register %q: %v", key, err))
		}
		if err := b.SetString(language.English, key, key); err != nil {
			panic(fmt.Sprintf("i18n: register %q: %v", key, err))
		}
	}
	return b
}

// Resolve maps a locale string such as "es-MX" or "en" to a supported tag.
// Unknown or empty locales resolve to Spanish.
func Resolve(locale string) language.Tag {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Spanish
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Spanish
	}
	return supported[index]
}

// Supported reports whether locale resolves to a catalog language without falling back.
func Supported(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	_, _, confidence := matcher.Match(tag)
	return confidence != language.No
}

// NewPrinter returns a printer for the given locale backed by the catalog.
func NewPrinter(locale string) *message.Printer {
	return message.NewPrinter(Resolve(locale), message.Catalog(defaultCatalog))
}
