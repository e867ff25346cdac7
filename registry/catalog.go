package registry

import "strconv"

func table(key, title string, fields []Field) TableConfig {
	return TableConfig{Key: key, Title: title, Fields: fields}
}

func singleton(key, title string, fields []Field) TableConfig {
	return TableConfig{Key: key, Title: title, Singleton: true, Fields: fields}
}

// numberedSeeds builds seed rows that pre-populate a table on first view,
// numbering them from 1 the way the plan template does.
func numberedSeeds(field string, values []string) []map[string]any {
	rows := make([]map[string]any, len(values))
	for i, v := range values {
		rows[i] = map[string]any{field: v, "sl_no": strconv.Itoa(i + 1)}
	}
	return rows
}

var deliverableSeeds = []string{
	"Statement of Work",
	"Project Plan",
	"Estimation",
	"Requirements document",
	"Design document",
	"Coding Guidelines",
	"Source Code",
	"Executables",
	"Release Notes",
	"Test Design and Report",
	"Review Form and Report",
	"User Manual",
	"Installation Manual",
	"Project Metrics Report",
	"Casual Analysis and Resolution",
}

var progressReviewSeeds = []string{
	"Internal Team reviews",
	"Metrics reporting",
	"Process compliance index audits",
	"Supplier audits",
	"Management Review",
	"Others (specify)",
}

// Sections is the full ordered plan catalog. Table keys must be unique across
// the whole catalog, not only within their section.
var Sections = []SectionConfig{
	{
		Key:         "m1",
		Title:       "M1 - Revision History",
		Description: "Track revisions and approvals for the project plan.",
		Tables: []TableConfig{
			table("revision-history", "Revision History", []Field{
				req("revision_no", FieldText),
				req("change_description", FieldLongText),
				opt("reviewed_by", FieldText),
				opt("approved_by", FieldText),
				req("date", FieldDate),
				opt("remarks", FieldLongText),
			}),
		},
	},
	{
		Key:         "m2",
		Title:       "M2 - Table of Contents",
		Description: "Provide navigation links for the plan sections.",
		Tables: []TableConfig{
			table("toc", "Table of Contents", []Field{
				req("sheet_name", FieldText),
				req("sections_in_sheet", FieldText),
				opt("link", FieldText),
			}),
		},
	},
	{
		Key:         "m3",
		Title:       "M3 - Definitions & References",
		Description: "Maintain references and terminology used within the plan.",
		Tables: []TableConfig{
			table("definitions", "Definitions & Acronyms", []Field{
				req("term", FieldText),
				req("definition", FieldLongText),
			}),
			singleton("reference-pif", "Reference To PIF", contentFields()),
			singleton("reference-other-docs", "Reference To Other Documents", contentFields()),
			singleton("plan-other-resource", "Plan For Other Resource", contentFields()),
		},
	},
	{
		Key:         "m4",
		Title:       "M4 - Project Overview & Requirements",
		Description: "Capture project overview, lifecycle, assumptions and security needs.",
		Tables: []TableConfig{
			singleton("reference-pis", "Reference To PIS", contentFields()),
			singleton("product-overview", "Product Overview", contentFields()),
			table("project-details", "Project Details", []Field{
				req("project_model", FieldText),
				req("project_type", FieldText),
				opt("software_type", FieldText),
				opt("standard_to_be_followed", FieldText),
				opt("customer", FieldText),
				opt("programming_language", FieldText),
				opt("project_duration", FieldText),
				opt("team_size", FieldText),
			}),
			singleton("lifecycle-model", "Lifecycle Model", []Field{
				req("content", FieldLongText),
				opt("image_input", FieldFile),
			}),
			table("assumptions", "Assumptions", []Field{
				req("sl_no", FieldNumber),
				req("brief_description", FieldLongText),
				opt("impact_on_project_objectives", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			table("constraints", "Constraints", []Field{
				req("constraint_no", FieldNumber),
				req("brief_description", FieldLongText),
				opt("impact_on_project_objectives", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			table("dependencies", "Dependencies", []Field{
				req("sl_no", FieldNumber),
				req("brief_description", FieldLongText),
				opt("impact_on_project_objectives", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			table("business-continuity", "Business Continuity", []Field{
				req("sl_no", FieldNumber),
				req("brief_description", FieldLongText),
				opt("impact_of_project_objectives", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			singleton("cyber-security-design", "Cyber Security Requirements Design Model", contentFields()),
			singleton("cybersecurity-case", "Cybersecurity Case", contentFields()),
			singleton("functional-safety-plan", "Functional Safety Plan", contentFields()),
			table("information-security-requirements", "Information Security Requirements", []Field{
				req("sl_no", FieldNumber),
				req("phase", FieldText),
				req("is_requirement_description", FieldLongText),
				opt("monitoring_control", FieldLongText),
				opt("tools", FieldText),
				opt("artifacts", FieldText),
				opt("remarks", FieldLongText),
			}),
		},
	},
	{
		Key:         "m5",
		Title:       "M5 - Resources & Planning",
		Description: "Outline stakeholders, resources, tools and reuse planning.",
		Tables: []TableConfig{
			singleton("organization-structure", "Organization Structure", []Field{
				req("content", FieldLongText),
				opt("image_input", FieldFile),
			}),
			table("stakeholders", "Stakeholders", []Field{
				req("sl_no", FieldNumber),
				req("name", FieldText),
				req("stakeholder_type", FieldText),
				req("role", FieldText),
				opt("authority_responsibility", FieldLongText),
				opt("contact_details", FieldText),
			}),
			table("human-resources", "Human Resource & Training Plan", []Field{
				req("sl_no", FieldNumber),
				req("role", FieldText),
				req("skill_experience_required", FieldLongText),
				req("no_of_people_required", FieldNumber),
				req("available", FieldNumber),
				opt("project_specific_training_needs", FieldLongText),
			}),
			table("environment-tools", "Environment & Tools", []Field{
				req("sl_no", FieldNumber),
				req("name_brief_description", FieldText),
				opt("no_of_licenses_required", FieldText),
				opt("source", FieldText),
				opt("status", FieldText),
				opt("remarks", FieldLongText),
			}),
			table("build-buy-reuse", "Build/Buy/Reuse", []Field{
				req("sl_no", FieldNumber),
				req("component_product", FieldText),
				req("build_buy_reuse", FieldText),
				opt("reuse_goals_objectives", FieldLongText),
				opt("vendor_project_name_version", FieldText),
				opt("responsible_person_reuse", FieldText),
				opt("quality_evaluation_criteria", FieldLongText),
				opt("responsible_person_qualification", FieldText),
				opt("modifications_planned", FieldLongText),
				opt("selected_item_operational_environment", FieldLongText),
				opt("known_defect_vulnerabilities_limitations", FieldLongText),
			}),
			table("reuse-analysis", "Reuse Analysis", []Field{
				req("sl_no", FieldNumber),
				req("component_product", FieldText),
				req("reuse", FieldText),
				opt("modifications_required", FieldLongText),
				opt("constraints_for_reuse", FieldLongText),
				opt("risk_analysis_result", FieldLongText),
				opt("impact_on_plan_activities", FieldLongText),
				opt("evaluation_to_comply_cyber_security", FieldLongText),
				opt("impact_on_integration_documents", FieldLongText),
				opt("known_defects", FieldLongText),
			}),
			singleton("summary-estimates", "Summary Estimates & Assumptions", contentFields()),
			table("size-complexity", "Size & Complexity", []Field{
				req("sl_no", FieldNumber),
				req("product_component_module", FieldText),
				opt("size_kloc", FieldText),
				opt("percent_reuse_estimated", FieldText),
				opt("effort_person_days_weeks_months", FieldText),
				opt("complexity", FieldText),
			}),
			table("duration-effort", "Duration & Effort Estimates", []Field{
				req("phase_milestone", FieldText),
				opt("schedule_days_weeks", FieldText),
				opt("effort_person_days_weeks", FieldText),
				opt("remarks_on_deviation", FieldLongText),
			}),
			table("off-the-shelf", "Usage of Off-the-shelf Components", []Field{
				req("sl_no", FieldNumber),
				req("name_of_component", FieldText),
				opt("requirements_complied", FieldText),
				opt("requirement_document_updated", FieldText),
				opt("specific_application_context", FieldLongText),
				opt("documentation_sufficient", FieldText),
				opt("vulnerabilities_identified", FieldText),
				opt("integration_document_updated", FieldText),
				opt("test_design_document", FieldText),
				opt("remarks", FieldLongText),
			}),
			table("cybersecurity-interface", "Cybersecurity Interface Agreement", []Field{
				req("sl_no", FieldNumber),
				req("phase", FieldText),
				req("work_product", FieldText),
				opt("document_ref", FieldText),
				opt("supplier", FieldText),
				opt("customer", FieldText),
				opt("level_of_confidentiality", FieldText),
				opt("remarks", FieldLongText),
			}),
		},
	},
	{
		Key:         "m6",
		Title:       "M6 - Monitoring & Control",
		Description: "Define monitoring cadence and quantitative objectives.",
		Tables: []TableConfig{
			table("monitoring-control", "Project Monitoring & Control", []Field{
				req("sl_no", FieldNumber),
				req("type_of_progress_reviews", FieldText),
				opt("month_phase_milestone_frequency", FieldText),
				opt("participants", FieldText),
				opt("remarks", FieldLongText),
				opt("mode_of_communication", FieldText),
			}),
			table("quantitative-objectives", "Quantitative Objectives", []Field{
				req("objective", FieldText),
				req("metric", FieldText),
				opt("priority", FieldText),
				opt("project_goal", FieldText),
				opt("organisation_norm", FieldText),
				opt("data_source", FieldText),
				opt("reason_for_deviation_from_organization_norm", FieldLongText),
			}),
			singleton("transition-plan", "Transition Plan", contentFields()),
		},
	},
	{
		Key:         "m7",
		Title:       "M7 - Quality Management",
		Description: "Maintain quality standards, verification, and causal analysis plans.",
		Tables: []TableConfig{
			table("standards-qm", "Standards", []Field{
				req("sl_no", FieldNumber),
				req("name_of_standard", FieldText),
				opt("brief_description", FieldLongText),
				opt("source", FieldText),
			}),
			table("verification-validation", "Verification & Validation Plan", []Field{
				req("sl_no", FieldNumber),
				req("artifact_name", FieldText),
				opt("verification_method", FieldText),
				opt("verification_type", FieldText),
				opt("validation_method", FieldText),
				opt("validation_type", FieldText),
				opt("tools_used", FieldText),
				opt("approving_authority", FieldText),
				opt("verification_validation_evidence", FieldLongText),
				opt("remarks_deviation", FieldLongText),
			}),
			table("confirmation-review", "Confirmation Review Plan", []Field{
				req("sl_no", FieldNumber),
				req("artifact_name", FieldText),
				req("phase", FieldText),
				req("confirmation_measure", FieldText),
				opt("plan_schedule", FieldText),
				opt("asil", FieldText),
				opt("independence_level", FieldText),
				opt("remarks", FieldLongText),
			}),
			table("proactive-causal", "Proactive Causal Analysis", []Field{
				req("sl_no", FieldNumber),
				opt("previous_similar_projects_executed", FieldLongText),
				opt("major_issues_defects_identified_by_customer", FieldLongText),
				opt("corrective_preventive_measures", FieldLongText),
			}),
			table("reactive-causal", "Reactive Causal Analysis", []Field{
				req("sl_no", FieldNumber),
				req("phase_milestone", FieldText),
				opt("brief_description_of_instances_when_causal_analysis_needs_to_be_done", FieldLongText),
				opt("causal_analysis_method_tool", FieldText),
				opt("responsibility", FieldText),
			}),
			singleton("supplier-evaluation", "Supplier Evaluation Capability", contentFields()),
			singleton("cybersecurity-assessment", "Cyber Security Assessment & Release", contentFields()),
		},
	},
	{
		Key:         "m8",
		Title:       "M8 - Decision Management & Release",
		Description: "Capture decisions, tailoring and release plans.",
		Tables: []TableConfig{
			table("decision-management", "Decision Management Plan", []Field{
				req("sl_no", FieldNumber),
				req("phase_milestone", FieldText),
				req("brief_description_of_major_decisions", FieldLongText),
				opt("decision_making_method_tool", FieldText),
				opt("responsibility", FieldText),
			}),
			table("tailoring-qms", "Tailoring QMS", []Field{
				req("sl_no", FieldNumber),
				req("brief_description_of_deviation", FieldLongText),
				opt("reasons_justifications", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			table("deviations", "Deviations", []Field{
				req("sl_no", FieldNumber),
				req("brief_description_of_deviation", FieldLongText),
				opt("reasons_justifications", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			table("product-release", "Product Release Plan", []Field{
				req("sl_no", FieldNumber),
				req("release_type", FieldText),
				opt("objective", FieldLongText),
				opt("release_date_milestones", FieldText),
				opt("mode_of_delivery", FieldText),
				opt("qa_release_audit_date", FieldText),
				opt("remarks", FieldLongText),
			}),
			table("tailoring-component", "Tailoring Due To Component Out Of Context", []Field{
				req("sl_no", FieldNumber),
				req("name_of_the_out_of_context_component", FieldText),
				opt("name_of_the_cyber_security_requirements_impacted", FieldLongText),
				opt("external_interfaces_document", FieldText),
				opt("impact_on_cyber_security_claims", FieldLongText),
				opt("impact_on_cyber_security_assumptions", FieldLongText),
				opt("validations_of_requirement_assumption_and_claims_are_done", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			table("release-cybersecurity-interface", "Release Cybersecurity Interface Agreement", []Field{
				req("sl_no", FieldNumber),
				req("phase", FieldText),
				req("work_product", FieldText),
				opt("document_ref", FieldText),
				opt("supplier_r_a_s_i_c", FieldText),
				opt("customer_r_a_s_i_c", FieldText),
				opt("level_of_confidentiality", FieldText),
				opt("remarks", FieldLongText),
			}),
		},
	},
	{
		Key:         "m9",
		Title:       "M9 - Risk Management",
		Description: "Manage risks, mitigations and exposure history.",
		Tables: []TableConfig{
			table("risk-management-plan", "Risk Management Plan", []Field{
				req("risk_identification_method", FieldLongText),
				opt("phase_sprint_milestone", FieldText),
				opt("remarks", FieldLongText),
			}),
			{
				Key:         "risk-mitigation",
				Title:       "Risk Mitigation & Contingency",
				HistoryKind: "exposure",
				Fields: []Field{
					req("risk_id", FieldText),
					req("risk_description", FieldLongText),
					opt("risk_category", FieldText),
					opt("risk_originator_name", FieldText),
					opt("risk_source", FieldText),
					req("date_of_risk_identification", FieldDate),
					opt("phase_of_risk_identification", FieldText),
					opt("risk_treatment_option", FieldText),
					opt("rationale_to_choose_risk_treatment_option", FieldLongText),
					opt("effort_required_for_risk_treatment", FieldText),
					opt("risk_treatment_schedule", FieldText),
					opt("success_criteria_for_risk_treatment_activities", FieldLongText),
					opt("criteria_for_cancellation_of_risk_treatment_activities", FieldLongText),
					opt("frequency_of_monitoring_risk_treatment_activities", FieldText),
					opt("threshold", FieldText),
					opt("trigger", FieldText),
					opt("probability", FieldText),
					opt("impact", FieldText),
					opt("risk_exposure", FieldText),
					opt("mitigation_plan", FieldLongText),
					opt("contingency_plan", FieldLongText),
					opt("verification_methods_for_mitigation_contingency_plan", FieldLongText),
					opt("list_of_stakeholders", FieldLongText),
					opt("responsibility", FieldText),
					opt("status", FieldText),
					opt("remarks", FieldLongText),
				},
			},
		},
	},
	{
		Key:         "m10",
		Title:       "M10 - Opportunity Management",
		Description: "Track opportunities and their evolution.",
		Tables: []TableConfig{
			{
				Key:         "opportunity-register",
				Title:       "Opportunity Register",
				HistoryKind: "value",
				Fields: []Field{
					req("opportunity_id", FieldText),
					req("opportunity_description", FieldLongText),
					opt("opportunity_category", FieldText),
					opt("opportunity_source", FieldText),
					req("date_of_identification", FieldDate),
					opt("phase_of_identification", FieldText),
					opt("cost", FieldText),
					opt("benefit", FieldText),
					opt("opportunity_value", FieldText),
					opt("leverage_plan_to_maximize_opportunities_identified", FieldLongText),
					opt("responsibility", FieldText),
					opt("status", FieldText),
					opt("remarks", FieldLongText),
				},
			},
			table("opportunity-plan", "Opportunity Management Plan", []Field{
				req("sl_no", FieldNumber),
				req("opportunity_identification_method", FieldText),
				opt("phase_sprint_milestone", FieldText),
				opt("remarks", FieldLongText),
			}),
		},
	},
	{
		Key:         "m11",
		Title:       "M11 - Configuration Management",
		Description: "Define configuration management strategy and responsibilities.",
		Tables: []TableConfig{
			singleton("configuration-tools", "Configuration Management Tools", contentFields()),
			table("configuration-items", "Configuration Items", []Field{
				req("sl_no", FieldNumber),
				req("ci_name_description", FieldText),
				opt("source", FieldText),
				opt("format_type", FieldText),
				opt("description_of_level", FieldLongText),
				opt("branching_merging_required", FieldText),
				opt("remarks", FieldLongText),
			}),
			table("non-configuration-items", "Non-Configurable Items", []Field{
				req("sl_no", FieldNumber),
				req("ci_name_description", FieldText),
				opt("source", FieldText),
				opt("format_type", FieldText),
				opt("description_of_level", FieldLongText),
				opt("branching_merging_required", FieldText),
				opt("remarks", FieldLongText),
			}),
			table("naming-convention", "Naming Convention", []Field{
				req("sl_no", FieldNumber),
				req("files_and_folders", FieldText),
				req("naming_convention", FieldText),
				opt("name_of_ci", FieldText),
			}),
			singleton("location-ci", "Location Of CI", contentFields()),
			singleton("versioning", "Versioning", contentFields()),
			singleton("baselining", "Baselining", contentFields()),
			table("branching-merging", "Branching & Merging", []Field{
				req("sl_no", FieldNumber),
				req("branch_convention", FieldText),
				opt("phase", FieldText),
				req("branch_name", FieldText),
				opt("risk_associated_with_branching", FieldLongText),
				opt("verification", FieldText),
			}),
			table("labelling-baselines", "Labelling Baselines", []Field{
				req("sl_no", FieldNumber),
				req("ci", FieldText),
				opt("planned_baseline_phase_milestone_date", FieldText),
				opt("criteria_for_baseline", FieldLongText),
				opt("baseline_name_label_or_tag", FieldText),
			}),
			table("labelling-baselines2", "Labelling Baselines (Branch Tags)", []Field{
				req("sl_no", FieldNumber),
				req("branch_convention", FieldText),
				opt("phase", FieldText),
				req("branch_name_tag", FieldText),
			}),
			singleton("change-management", "Change Management Plan", contentFields()),
			table("configuration-control", "Configuration Control", []Field{
				req("sl_no", FieldNumber),
				req("ci_or_folder_name_path", FieldText),
				opt("developer_role", FieldText),
				opt("team_leader_role", FieldText),
				opt("em_role", FieldText),
				opt("ed_role", FieldText),
				opt("qa_role", FieldText),
				opt("ccb_member", FieldText),
			}),
			table("configuration-control-board", "Configuration Control Board", []Field{
				req("sl_no", FieldNumber),
				req("ccb_members_name", FieldText),
				opt("role", FieldText),
				opt("remarks_need_for_inclusion", FieldLongText),
			}),
			table("configuration-status", "Configuration Status Accounting", []Field{
				req("sl_no", FieldNumber),
				req("phase_milestone_month", FieldText),
			}),
			table("configuration-audit", "Configuration Management Audit", []Field{
				req("sl_no", FieldNumber),
				req("phase_milestone_month", FieldText),
			}),
			singleton("backup-retrieval", "Backup & Retrieval", contentFields()),
			singleton("recovery", "Recovery", contentFields()),
			singleton("release-mechanism", "Release Mechanism", contentFields()),
			singleton("information-retention", "Information Retention Plan", contentFields()),
		},
	},
	{
		Key:         "m12",
		Title:       "M12 - Deliverables",
		Description: "Monitor planned deliverables and milestones.",
		Tables: []TableConfig{
			{
				Key:         "deliverables",
				Title:       "Deliverables",
				DefaultRows: numberedSeeds("work_product", deliverableSeeds),
				Fields: []Field{
					req("sl_no", FieldNumber),
					req("work_product", FieldText),
					opt("owner_of_deliverable", FieldText),
					opt("approving_authority", FieldText),
					opt("release_to_customer", FieldText),
					opt("milestone_a", FieldText),
					opt("milestone_b", FieldText),
					opt("milestone_c", FieldText),
					opt("milestone_d", FieldText),
				},
			},
		},
	},
	{
		Key:         "m13",
		Title:       "M13 - Supplier Agreement Management",
		Description: "Coordinate supplier scope, risks and deliverables.",
		Tables: []TableConfig{
			singleton("supplier-intro", "Supplier Project Introduction & Scope", contentFields()),
			singleton("support-plan", "Support Project Plan", contentFields()),
			table("sam-assumptions", "SAM Assumptions", []Field{
				req("sl_no", FieldNumber),
				req("brief_description", FieldLongText),
				opt("impact_on_project_objectives", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			table("sam-constraints", "SAM Constraints", []Field{
				req("constraint_no", FieldNumber),
				req("brief_description", FieldLongText),
				opt("impact_on_project_objectives", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			table("sam-dependencies", "SAM Dependencies", []Field{
				req("sl_no", FieldNumber),
				req("brief_description", FieldLongText),
				opt("impact_on_project_objectives", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			table("sam-risks", "SAM Risks", []Field{
				req("sl_no", FieldNumber),
				req("brief_description", FieldLongText),
				opt("impact_of_project_objectives", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			{
				Key:         "sam-status",
				Title:       "SAM Status Reporting & Communication",
				DefaultRows: numberedSeeds("type_of_progress_reviews", progressReviewSeeds),
				Fields: []Field{
					req("sl_no", FieldNumber),
					req("type_of_progress_reviews", FieldText),
					opt("month_phase_milestone_frequency", FieldText),
					opt("participants", FieldText),
					opt("remarks", FieldLongText),
				},
			},
			table("sam-quantitative", "SAM Quantitative Objectives", []Field{
				req("objective", FieldText),
				req("metric", FieldText),
				opt("project_goal", FieldText),
				opt("organisation_norm", FieldText),
				opt("data_source", FieldText),
				opt("reason_for_deviation_from_organization_norm", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			table("sam-verification", "SAM Verification & Validation", []Field{
				req("sl_no", FieldNumber),
				req("work_product", FieldText),
				opt("verification_method", FieldText),
				opt("validation_method", FieldText),
				opt("approving_authority", FieldText),
				opt("remarks_for_deviation", FieldLongText),
			}),
			singleton("supplier-config-plan", "Supplier Configuration Management Plan", contentFields()),
			table("tailoring-sam", "Tailoring SAM", []Field{
				req("sl_no", FieldNumber),
				req("brief_description_of_deviation", FieldLongText),
				opt("reasons_justifications", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			table("sam-deviations", "SAM Deviations", []Field{
				req("sl_no", FieldNumber),
				req("brief_description_of_deviation", FieldLongText),
				opt("reasons_justifications", FieldLongText),
				opt("remarks", FieldLongText),
			}),
			table("sam-product-release", "SAM Product Release Plan", []Field{
				req("sl_no", FieldNumber),
				req("release_type", FieldText),
				opt("objective", FieldLongText),
				opt("release_date_milestones", FieldText),
				opt("remarks", FieldLongText),
			}),
			singleton("sam-location-ci", "SAM Location Of CI", contentFields()),
			singleton("sam-versioning", "SAM Versioning", contentFields()),
			singleton("sam-baselining", "SAM Baselining", contentFields()),
			table("sam-labelling", "SAM Labelling Baselines", []Field{
				req("sl_no", FieldNumber),
				req("ci", FieldText),
				opt("planned_baseline_phase_milestone_date", FieldText),
				opt("criteria_for_baseline", FieldLongText),
				opt("baseline_name_label_or_tag", FieldText),
			}),
			table("sam-labelling2", "SAM Labelling Baselines (Branch Tags)", []Field{
				req("sl_no", FieldNumber),
				req("branch_convention", FieldText),
				opt("phase", FieldText),
				req("branch_name_tag", FieldText),
			}),
			singleton("sam-change-management", "SAM Change Management Plan", contentFields()),
			table("sam-configuration-control", "SAM Configuration Control", []Field{
				req("sl_no", FieldNumber),
				req("ci_or_folder_name_path", FieldText),
				opt("developer_role", FieldText),
				opt("team_leader_role", FieldText),
				opt("pm_role", FieldText),
				opt("pgm_dh_role", FieldText),
				opt("qa_role", FieldText),
				opt("ccb_member", FieldText),
			}),
			singleton("sam-configuration-audit", "SAM Configuration Management Audit", contentFields()),
			singleton("sam-backup", "SAM Backup", contentFields()),
			singleton("sam-release-mechanism", "SAM Release Mechanism", contentFields()),
			singleton("sam-information-retention", "SAM Information Retention Plan", contentFields()),
			{
				Key:         "sam-deliverables",
				Title:       "SAM Deliverables",
				DefaultRows: numberedSeeds("work_product", deliverableSeeds),
				Fields: []Field{
					req("sl_no", FieldNumber),
					req("work_product", FieldText),
					opt("owner_of_deliverable", FieldText),
					opt("approving_authority", FieldText),
					opt("release_to_tsbj", FieldText),
					opt("milestone_a", FieldText),
					opt("milestone_b", FieldText),
					opt("milestone_c", FieldText),
					opt("milestone_d", FieldText),
				},
			},
		},
	},
}
