package model

import auditModel "portfolio-backend/internal/domains/audit/model"

// RecentActivityLimit - số audit entry hiển thị trên dashboard
const RecentActivityLimit = 10

type Stats struct {
	ProjectsCount       int                `json:"projectsCount"`
	ExperienceCount     int                `json:"experienceCount"`
	SkillsCount         int                `json:"skillsCount"`
	CertificationsCount int                `json:"certificationsCount"`
	RecentActivity      []auditModel.Entry `json:"recentActivity"`
}
