package taxonomy

// Catalog is the fixed skill graph the matcher runs on. Related lists are
// directed: JavaScript points at Node.js, Node.js does not point back.
func Catalog() []SkillNode {
	return []SkillNode{
		{Canonical: "JavaScript", Synonyms: []string{"js", "ecmascript", "es6"}, Related: []string{"TypeScript", "Node.js", "React", "Vue.js"}, Category: "Programming Language"},
		{Canonical: "TypeScript", Synonyms: []string{"ts"}, Related: []string{"JavaScript", "Angular", "Node.js"}, Category: "Programming Language"},
		{Canonical: "Python", Synonyms: []string{"py", "python3"}, Related: []string{"Django", "Flask", "Pandas", "Machine Learning"}, Category: "Programming Language"},
		{Canonical: "Java", Synonyms: []string{"jdk"}, Related: []string{"Spring", "Kotlin"}, Category: "Programming Language"},
		{Canonical: "Go", Synonyms: []string{"golang"}, Related: []string{"Docker", "Kubernetes"}, Category: "Programming Language"},
		{Canonical: "C#", Synonyms: []string{"csharp", "c sharp"}, Related: []string{".NET"}, Category: "Programming Language"},
		{Canonical: "Rust", Synonyms: nil, Related: []string{"Go"}, Category: "Programming Language"},
		{Canonical: "Ruby", Synonyms: nil, Related: []string{"Rails"}, Category: "Programming Language"},
		{Canonical: "PHP", Synonyms: nil, Related: []string{"Laravel"}, Category: "Programming Language"},
		{Canonical: "Kotlin", Synonyms: nil, Related: []string{"Java"}, Category: "Programming Language"},
		{Canonical: "Swift", Synonyms: nil, Related: []string{"Kotlin"}, Category: "Programming Language"},

		{Canonical: "React", Synonyms: []string{"reactjs", "react js"}, Related: []string{"JavaScript", "TypeScript", "Next.js"}, Category: "Frontend"},
		{Canonical: "Vue.js", Synonyms: []string{"vue", "vuejs"}, Related: []string{"JavaScript"}, Category: "Frontend"},
		{Canonical: "Angular", Synonyms: []string{"angularjs"}, Related: []string{"TypeScript"}, Category: "Frontend"},
		{Canonical: "Next.js", Synonyms: []string{"nextjs"}, Related: []string{"React"}, Category: "Frontend"},

		{Canonical: "Node.js", Synonyms: []string{"node", "node js"}, Related: []string{"Express", "NestJS"}, Category: "Backend"},
		{Canonical: "Express", Synonyms: []string{"expressjs", "express js"}, Related: []string{"Node.js"}, Category: "Backend"},
		{Canonical: "NestJS", Synonyms: []string{"nest js"}, Related: []string{"Node.js", "TypeScript"}, Category: "Backend"},
		{Canonical: "Django", Synonyms: nil, Related: []string{"Python"}, Category: "Backend"},
		{Canonical: "Flask", Synonyms: nil, Related: []string{"Python"}, Category: "Backend"},
		{Canonical: "Spring", Synonyms: []string{"spring boot", "springboot"}, Related: []string{"Java"}, Category: "Backend"},
		{Canonical: "Rails", Synonyms: []string{"ruby on rails", "ror"}, Related: []string{"Ruby"}, Category: "Backend"},
		{Canonical: "Laravel", Synonyms: nil, Related: []string{"PHP"}, Category: "Backend"},
		{Canonical: ".NET", Synonyms: []string{"dotnet", "dot net", "asp net"}, Related: []string{"C#"}, Category: "Backend"},
		{Canonical: "GraphQL", Synonyms: nil, Related: []string{"REST APIs"}, Category: "Backend"},
		{Canonical: "REST APIs", Synonyms: []string{"rest", "restful"}, Related: []string{"GraphQL"}, Category: "Backend"},

		{Canonical: "PostgreSQL", Synonyms: []string{"postgres", "psql"}, Related: []string{"MySQL", "SQL"}, Category: "Database"},
		{Canonical: "MySQL", Synonyms: []string{"mariadb"}, Related: []string{"PostgreSQL", "SQL"}, Category: "Database"},
		{Canonical: "MongoDB", Synonyms: []string{"mongo"}, Related: []string{"Redis"}, Category: "Database"},
		{Canonical: "Redis", Synonyms: nil, Related: []string{"MongoDB"}, Category: "Database"},
		{Canonical: "SQL", Synonyms: []string{"tsql", "plsql"}, Related: []string{"PostgreSQL", "MySQL"}, Category: "Database"},
		{Canonical: "Elasticsearch", Synonyms: []string{"elastic search", "opensearch"}, Related: nil, Category: "Database"},

		{Canonical: "AWS", Synonyms: []string{"amazon web services"}, Related: []string{"Docker", "Kubernetes", "Terraform"}, Category: "Cloud"},
		{Canonical: "GCP", Synonyms: []string{"google cloud", "google cloud platform"}, Related: []string{"Kubernetes"}, Category: "Cloud"},
		{Canonical: "Azure", Synonyms: []string{"microsoft azure"}, Related: []string{".NET"}, Category: "Cloud"},

		{Canonical: "Docker", Synonyms: nil, Related: []string{"Kubernetes"}, Category: "DevOps"},
		{Canonical: "Kubernetes", Synonyms: []string{"k8s"}, Related: []string{"Docker"}, Category: "DevOps"},
		{Canonical: "Terraform", Synonyms: nil, Related: []string{"AWS"}, Category: "DevOps"},
		{Canonical: "CI/CD", Synonyms: []string{"cicd", "ci cd", "continuous integration"}, Related: []string{"Docker", "Git"}, Category: "DevOps"},
		{Canonical: "Git", Synonyms: []string{"github", "gitlab"}, Related: []string{"CI/CD"}, Category: "DevOps"},

		{Canonical: "Testing", Synonyms: []string{"unit testing", "integration testing", "qa"}, Related: []string{"CI/CD"}, Category: "Testing"},

		{Canonical: "Communication", Synonyms: []string{"communication skills"}, Related: []string{"Teamwork"}, Category: "Soft Skill"},
		{Canonical: "Teamwork", Synonyms: []string{"collaboration"}, Related: []string{"Communication"}, Category: "Soft Skill"},
		{Canonical: "Leadership", Synonyms: []string{"team leadership", "people management"}, Related: []string{"Communication"}, Category: "Soft Skill"},

		{Canonical: "Agile", Synonyms: []string{"scrum", "kanban"}, Related: []string{"Project Management"}, Category: "Methodology"},
		{Canonical: "Project Management", Synonyms: nil, Related: []string{"Agile"}, Category: "Methodology"},

		{Canonical: "Machine Learning", Synonyms: []string{"ml"}, Related: []string{"Python", "TensorFlow", "PyTorch"}, Category: "Machine Learning"},
		{Canonical: "TensorFlow", Synonyms: nil, Related: []string{"Python", "Machine Learning"}, Category: "Machine Learning"},
		{Canonical: "PyTorch", Synonyms: nil, Related: []string{"Python", "Machine Learning"}, Category: "Machine Learning"},
		{Canonical: "Pandas", Synonyms: nil, Related: []string{"Python"}, Category: "Machine Learning"},
	}
}
