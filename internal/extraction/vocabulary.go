package extraction

var defaultSkills = []string{
	// languages
	"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby", "go", "golang", "rust",
	"swift", "kotlin", "scala", "r", "perl", "bash", "shell scripting", "objective-c", "dart",
	"lua", "matlab", "assembly", "fortran", "sas", "haskell", "clojure", "visual basic", "vb.net", "abap",

	// frameworks and libraries
	"django", "flask", "spring", "spring boot", "react", "angular", "vue", "node.js", "fastapi", "express", "express.js",
	"next.js", "nestjs", "laravel", "symfony", "flutter", "react native", "svelte", "pytorch", "tensorflow",
	"struts", "play framework", "koa", "meteor", "ember.js", "backbone.js", "codeigniter", "cakephp", "yii",
	"nuxt.js", "gatsby", "blazor", "qt",

	// .net
	".net", ".net core", ".net framework", "asp.net", "asp.net mvc", "asp.net core", "ado.net", "entity framework", "linq",

	// databases and data tools
	"sql", "sql server", "mysql", "postgresql", "mongodb", "redis", "nosql", "oracle", "sqlite", "elasticsearch", "snowflake",
	"firebase", "dynamodb", "cassandra", "neo4j", "bigquery", "redshift", "clickhouse", "couchdb", "hbase",
	"influxdb", "memcached", "realm", "timescaledb", "duckdb", "cosmos db", "qdrant", "pinecone",

	// cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "terraform", "ansible", "prometheus", "grafana",
	"circleci", "github actions", "bitbucket pipelines", "openstack", "cloudformation", "helm", "istio",
	"argo cd", "vault", "consul", "packer", "airflow", "data pipeline", "mlops", "cloud run", "lambda",
	"ecs", "eks", "cloudwatch",

	// security
	"oauth", "oauth2", "jwt", "ssl", "tls", "saml", "openid connect", "mfa", "iam", "cybersecurity",
	"network security", "firewall", "penetration testing", "encryption", "hashing",

	// ai, ml and data science
	"machine learning", "ai", "data science", "analytics", "nlp", "computer vision", "deep learning", "pandas",
	"numpy", "scikit-learn", "matplotlib", "huggingface", "openai api", "llm", "generative ai", "langchain",
	"autogen", "rasa", "spacy", "transformers", "text classification", "sentiment analysis", "data visualization",
	"tableau", "power bi", "big data", "hadoop", "spark", "pyspark", "databricks",

	// apis, architecture and monitoring
	"rest api", "graphql", "graphql api", "restful api", "restful services", "soap", "rpc", "grpc", "openapi",
	"swagger", "swagger ui", "api testing", "load testing", "jmeter", "new relic", "datadog", "sentry",
	"application monitoring", "performance tuning", "microservices", "websockets", "api gateway",
	"message queues", "rabbitmq", "kafka", "celery", "redis streams", "event-driven architecture",
	"service mesh", "load balancer",

	// ci/cd and testing
	"git", "github", "gitlab", "agile", "scrum", "devops", "pytest", "jest",
	"mocha", "cypress", "postman", "jira", "confluence", "maven", "gradle", "ant", "sonarqube",
	"selenium", "playwright", "testng", "junit", "mockito", "karma", "chai", "enzyme",

	// frontend
	"html", "html5", "css", "css3", "bootstrap", "jquery", "tailwind", "chakra ui", "material ui", "redux", "zustand",
	"framer motion", "figma", "ux design", "responsive design", "pwa", "webpack", "vite", "babel",

	// mobile
	"android", "ios", "xcode", "swiftui", "jetpack compose", "ionic", "capacitor", "cordova",
	"unity", "unreal engine",

	// erp, crm and low-code
	"sap", "sap abap", "sap hana", "salesforce", "salesforce apex", "salesforce lightning",
	"power apps", "power automate", "microsoft dynamics 365", "business central", "navision",

	// emerging
	"blockchain", "solidity", "smart contracts", "web3", "nft", "metaverse", "edge computing",
	"quantum computing", "robotics", "iot", "raspberry pi", "arduino", "automation",

	// ides
	"visual studio", "visual studio code", "eclipse", "intellij idea", "netbeans", "android studio",
}

var defaultDomains = []string{
	"Information Technology", "Software Development", "Cloud Computing", "Cybersecurity", "Data Science", "Blockchain",
	"Internet of Things", "Banking", "Finance", "Insurance", "FinTech", "Healthcare", "Pharmaceuticals", "Biotechnology",
	"Manufacturing", "Automotive", "Energy", "Construction", "Retail", "E-commerce", "Logistics", "Telecommunications",
	"Media & Entertainment", "Advertising & Marketing", "Education Technology", "Public Sector", "Real Estate",
	"Hospitality", "Travel & Tourism", "Agriculture", "Legal & Compliance", "Human Resources", "Environmental & Sustainability",
}

// Presence of any of these marks a text as Information Technology.
var defaultTechKeywords = []string{
	"python", "java", "sql", "javascript", "html", "css", ".net", "c++",
	"aws", "azure", "gcp", "docker", "kubernetes", "react", "angular",
	"node.js", "django", "flask", "spring", "mongodb", "mysql", "postgresql",
}

// InformationTechnology is the domain implied by technical keywords.
const InformationTechnology = "Information Technology"
