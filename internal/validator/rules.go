package validator

import "github.com/go-playground/validator/v10"

// Enum rules for the profile/job vocabulary. Registered at startup;
// registration failures are programming errors and ignored deliberately
// (the tag names are compile-time constants).
func registerCustomRules(v *validator.Validate) {
	_ = v.RegisterValidation("job_status", oneOfRule("employed", "seeking", "open"))
	_ = v.RegisterValidation("proficiency", oneOfRule("beginner", "intermediate", "advanced", "expert"))
	_ = v.RegisterValidation("employment_type", oneOfRule("full-time", "part-time", "intern", "contract", "freelance", "internship"))
	_ = v.RegisterValidation("search_type", oneOfRule("people", "jobs", "all"))
}

func oneOfRule(allowed ...string) validator.Func {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		if val == "" {
			return true // emptiness is the job of the required tag
		}
		return set[val]
	}
}
