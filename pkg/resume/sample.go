/*
 * Copyright 2026 The Folio Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package resume

import (
	"time"

	"github.com/folio-team/folio/api/types"
)

// NewSample creates a document pre-populated with demonstration content. The
// document and every entry and item get fresh identifiers from ids.
func NewSample(ids types.IDGenerator, template types.TemplateType, now time.Time) *Document {
	template, _ = types.TemplateTypeOrDefault(template)

	items := func(values ...string) []Item {
		list := make([]Item, 0, len(values))
		for _, v := range values {
			list = append(list, Item{ID: ids(), Value: v})
		}
		return list
	}

	doc := &Document{
		ID:        ids(),
		Title:     SampleTitle,
		CreatedAt: now,
		UpdatedAt: now,
		Template:  template,
	}

	doc.Content = Content{
		Basics: Basics{
			Name:     "John Doe",
			Label:    "Software Developer",
			Email:    "john.doe@example.com",
			Phone:    "(555) 123-4567",
			Website:  "https://johndoe.com",
			Location: "San Francisco, CA",
			Summary: "Experienced software developer with a passion for building innovative applications. " +
				"Skilled in JavaScript, TypeScript, React, and Node.js.",
		},
		Profiles: []ProfileEntry{
			{ID: ids(), Network: "LinkedIn", Username: "johndoe", URL: "https://linkedin.com/in/johndoe"},
			{ID: ids(), Network: "GitHub", Username: "johndoe", URL: "https://github.com/johndoe"},
		},
		Work: []WorkEntry{
			{
				ID:        ids(),
				Company:   "Tech Innovations Inc.",
				Position:  "Senior Software Developer",
				Website:   "https://techinnovations.com",
				StartDate: "2020-01",
				EndDate:   "Present",
				Summary:   "Lead developer for the company's flagship product, a customer relationship management system.",
				Highlights: items(
					"Architected and implemented a new frontend using React and TypeScript",
					"Improved application performance by 40%",
					"Mentored junior developers and conducted code reviews",
				),
			},
			{
				ID:        ids(),
				Company:   "Digital Solutions LLC",
				Position:  "Software Developer",
				Website:   "https://digitalsolutions.com",
				StartDate: "2017-03",
				EndDate:   "2019-12",
				Summary:   "Worked on various web application projects for clients in finance and healthcare industries.",
				Highlights: items(
					"Developed responsive web applications using React",
					"Implemented RESTful APIs using Node.js and Express",
					"Collaborated with UX designers to improve user experience",
				),
			},
		},
		Education: []EducationEntry{
			{
				ID:          ids(),
				Institution: "University of California, Berkeley",
				Area:        "Computer Science",
				StudyType:   "Bachelor of Science",
				StartDate:   "2013-09",
				EndDate:     "2017-05",
				GPA:         "3.8",
				Courses: items(
					"Data Structures and Algorithms",
					"Web Development",
					"Database Systems",
					"Artificial Intelligence",
				),
			},
		},
		Skills: []SkillEntry{
			{
				ID:       ids(),
				Name:     "Frontend Development",
				Level:    "Expert",
				Keywords: items("React", "TypeScript", "JavaScript", "HTML", "CSS", "Tailwind CSS"),
			},
			{
				ID:       ids(),
				Name:     "Backend Development",
				Level:    "Advanced",
				Keywords: items("Node.js", "Express", "PostgreSQL", "MongoDB", "REST APIs"),
			},
			{
				ID:       ids(),
				Name:     "Tools & Methodologies",
				Level:    "Advanced",
				Keywords: items("Git", "GitHub", "Docker", "CI/CD", "Agile", "Scrum"),
			},
		},
		Projects: []ProjectEntry{
			{
				ID:          ids(),
				Name:        "E-commerce Platform",
				Description: "A full-stack e-commerce platform with product management, shopping cart, and payment processing.",
				StartDate:   "2019-06",
				EndDate:     "2019-12",
				URL:         "https://github.com/johndoe/ecommerce",
				Highlights: items(
					"Built with React, Node.js, and MongoDB",
					"Implemented Stripe payment integration",
					"Designed responsive UI for mobile and desktop",
				),
			},
		},
		Awards: []AwardEntry{
			{
				ID:      ids(),
				Title:   "Employee of the Year",
				Date:    "2021-12",
				Awarder: "Tech Innovations Inc.",
				Summary: "Recognized for outstanding contributions to the development team and product innovation.",
			},
		},
		Certificates: []CertificateEntry{
			{
				ID:     ids(),
				Name:   "AWS Certified Developer",
				Date:   "2020-05",
				Issuer: "Amazon Web Services",
				URL:    "https://aws.amazon.com/certification/certified-developer-associate/",
			},
		},
		Languages: []LanguageEntry{
			{ID: ids(), Language: "English", Fluency: "Native"},
			{ID: ids(), Language: "Spanish", Fluency: "Intermediate"},
		},
		Interests: []InterestEntry{
			{ID: ids(), Name: "Open Source", Keywords: items("Contributing", "GitHub", "Community")},
			{ID: ids(), Name: "Hiking", Keywords: items("Nature", "Outdoors", "Adventure")},
		},
		References: []ReferenceEntry{
			{
				ID:        ids(),
				Name:      "Jane Smith, Engineering Manager at Tech Innovations",
				Reference: "John is an exceptional developer with strong technical skills and a great team player.",
			},
		},
	}

	return doc
}
